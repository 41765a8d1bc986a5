package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	profilemodels "matchmaker/internal/profile/models"
)

func stateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the onboarding stage and profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.api.State(requestContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, state)
		},
	}
}

func policyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Show the service policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := opts.api.Policy(requestContext(cmd))
			if err != nil {
				return err
			}
			for _, term := range policy.Terms {
				fmt.Fprintln(cmd.OutOrStdout(), "• "+term)
			}
			return nil
		},
	}
}

func startCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Leave the intro screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.api.Start(requestContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, state)
		},
	}
}

// login <provider>: pick kakao or google.
func loginCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "login <kakao|google>",
		Short:     "Choose a login option",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"kakao", "google"},
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.api.Login(requestContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, state)
		},
	}
}

func agreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "agree",
		Short: "Agree to the service policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.api.AgreePolicy(requestContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, state)
		},
	}
}

func submitCmd(opts *options) *cobra.Command {
	var req profilemodels.SubmitRequest
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Register the profile and send it for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.api.SubmitProfile(requestContext(cmd), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, state)
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.MBTI, "mbti", "", "MBTI type")
	cmd.Flags().StringVar(&req.Answers, "answers", "", "free-form answers")
	return cmd
}

func approveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "approve",
		Short: "Approve the profile under review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.api.Approve(requestContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, state)
		},
	}
}

func advanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <stage>",
		Short: "Advance onboarding to the given stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.api.Advance(requestContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, state)
		},
	}
}

// profile shows the profile, or updates the fields whose flags were given.
func profileCmd(opts *options) *cobra.Command {
	var name, mbti, answers string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit my profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := requestContext(cmd)
			var req profilemodels.UpdateRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("mbti") {
				req.MBTI = &mbti
			}
			if cmd.Flags().Changed("answers") {
				req.Answers = &answers
			}
			if req.Name == nil && req.MBTI == nil && req.Answers == nil {
				p, err := opts.api.Profile(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, p)
			}
			p, err := opts.api.UpdateProfile(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&mbti, "mbti", "", "new MBTI type")
	cmd.Flags().StringVar(&answers, "answers", "", "new answers")
	return cmd
}
