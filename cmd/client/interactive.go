package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"calendar-assistant/pkg/assistant"
)

func newInteractiveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for scheduling requests until 'quit'",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts.client(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runInteractive reads one request per line. Failed requests are reported and
// the loop continues; only a read error ends it early.
func runInteractive(ctx context.Context, client *assistant.Client, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to Calendar Assistant!")
	fmt.Fprintln(out, "Type 'quit' to exit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "\nWhat would you like to schedule?")
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "quit", "exit":
			return nil
		case "":
			fmt.Fprintln(out, "Please enter a request or type 'quit' to exit")
			continue
		}

		res, err := client.ScheduleQuery(ctx, query)
		if err != nil {
			printError(out, err)
			continue
		}
		printScheduled(out, res)
	}
}

func printError(out io.Writer, err error) {
	var apiErr *assistant.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(out, "\nError: %s\n", apiErr.Message)
		return
	}
	fmt.Fprintf(out, "\nError: could not reach the server: %v\n", err)
}
