package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"calendar-assistant/pkg/assistant"
)

const envServerURL = "CALENDAR_ASSISTANT_URL"

type rootOptions struct {
	server  string
	timeout time.Duration
}

func (o *rootOptions) client() *assistant.Client {
	return assistant.New(o.server, assistant.WithHTTPClient(&http.Client{Timeout: o.timeout}))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "calendar-client",
		Short: "Schedule Google Calendar events in plain language",
		Long: `calendar-client sends scheduling requests to a calendar assistant server.

Run without a subcommand to start an interactive prompt.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts.client(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	defaultServer := os.Getenv(envServerURL)
	if defaultServer == "" {
		defaultServer = assistant.DefaultBaseURL
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "Base URL of the calendar assistant (env "+envServerURL+")")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", assistant.DefaultTimeout, "Request timeout")

	cmd.AddCommand(newScheduleCmd(opts))
	cmd.AddCommand(newCreateCmd(opts))
	cmd.AddCommand(newUpcomingCmd(opts))
	cmd.AddCommand(newInteractiveCmd(opts))

	return cmd
}
