package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func matchesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "List matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.api.Matches(requestContext(cmd))
			if err != nil {
				return err
			}
			if len(list.Matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches yet; try `matchctl demo-match`")
				return nil
			}
			for _, m := range list.Matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, m.PartnerName, m.StatusLabel)
			}
			return nil
		},
	}
}

func matchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match <id>",
		Short: "Show one match and its conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.api.Match(requestContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, m)
		},
	}
}

func demoMatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo-match",
		Short: "Create a demo match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.api.CreateDemoMatch(requestContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, m)
		},
	}
}

// send <match-id> <message>
func sendCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "send <match-id> <message>",
		Short: "Send a message in a match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.api.SendMessage(requestContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, m)
		},
	}
}

func discoverCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "List recommended candidates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.api.Candidates(requestContext(cmd))
			if err != nil {
				return err
			}
			for _, c := range list.Candidates {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s · %s\t%s\n", c.ID, c.Name, c.MBTI, c.Blurb)
			}
			return nil
		},
	}
}

func introCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "intro <candidate-id>",
		Short: "Ask the matchmaker for an introduction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.api.RequestIntro(requestContext(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
}

func introsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "intros",
		Short: "List introductions requested so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.api.IntroRequests(requestContext(cmd))
			if err != nil {
				return err
			}
			for _, in := range list.Intros {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					in.CandidateID, in.CandidateName, in.RequestedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func instantCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "instant <candidate-id>",
		Short: "Match with a candidate right away (demo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.api.InstantMatch(requestContext(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return printJSON(cmd, resp.Match)
		},
	}
}

// chat shows the matchmaker conversation, or sends a message when one is given.
func chatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to your matchmaker",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := requestContext(cmd)
			if len(args) == 1 {
				if _, err := opts.api.SendToMatchmaker(ctx, args[0]); err != nil {
					return err
				}
			}
			thread, err := opts.api.MatchmakerThread(ctx)
			if err != nil {
				return err
			}
			for _, m := range thread.Messages {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", m.Author, m.Text)
			}
			return nil
		},
	}
}

func auditCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Show the audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := opts.api.Audit(requestContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, events)
		},
	}
}
