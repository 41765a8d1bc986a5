package commands

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"matchmaker/internal/client"
	"matchmaker/pkg/requestcontext"
)

const defaultServer = "http://127.0.0.1:8080"

type options struct {
	server  string
	timeout time.Duration
	api     *client.Client
}

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the matchctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "matchctl",
		Short:         "Drive a matchmaker session from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.server == "" {
				opts.server = os.Getenv("MATCHMAKER_URL")
			}
			if opts.server == "" {
				opts.server = defaultServer
			}
			opts.api = client.New(opts.server, client.WithTimeout(opts.timeout), client.WithRequestID())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.server, "server", "", "API base URL (default $MATCHMAKER_URL or "+defaultServer+")")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-request timeout")

	root.AddCommand(
		stateCmd(opts), policyCmd(opts), startCmd(opts), loginCmd(opts), agreeCmd(opts),
		submitCmd(opts), approveCmd(opts), advanceCmd(opts),
		profileCmd(opts),
		matchesCmd(opts), matchCmd(opts), demoMatchCmd(opts), sendCmd(opts),
		discoverCmd(opts), introCmd(opts), introsCmd(opts), instantCmd(opts),
		chatCmd(opts), auditCmd(opts),
	)
	return root
}

// requestContext tags every CLI call with its own request id so server logs can be correlated.
func requestContext(cmd *cobra.Command) context.Context {
	return requestcontext.WithRequestID(cmd.Context(), "matchctl-"+uuid.NewString())
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
