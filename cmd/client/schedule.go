package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calendar-assistant/pkg/assistant"
)

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <request>",
		Short: "Create an event from a natural-language request",
		Example: `  calendar-client schedule "Meeting with John on Monday at 10am for 45 minutes"
  calendar-client schedule pick up groceries tomorrow evening`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			res, err := opts.client().ScheduleQuery(cmd.Context(), query)
			if err != nil {
				return err
			}
			printScheduled(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		title, description string
		start, end, zone   string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create an event from explicit fields",
		Example: `  calendar-client create --title "Dentist" --start 2024-03-21T09:00 --end 2024-03-21T10:00 --timezone America/Los_Angeles`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" || start == "" || end == "" || zone == "" {
				return errors.New("--title, --start, --end and --timezone are required")
			}
			res, err := opts.client().ScheduleEvent(cmd.Context(), assistant.EventInput{
				Title:       title,
				Description: description,
				Start:       &assistant.TimeValue{DateTime: start, TimeZone: zone},
				End:         &assistant.TimeValue{DateTime: end, TimeZone: zone},
			})
			if err != nil {
				return err
			}
			printScheduled(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&start, "start", "", "Start date-time (RFC 3339 or local YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End date-time (RFC 3339 or local YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&zone, "timezone", "", "IANA time zone, e.g. America/Los_Angeles")

	return cmd
}

func newUpcomingCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := opts.client().Upcoming(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No upcoming events.")
				return nil
			}
			for _, e := range events {
				printEvent(out, e)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of events (server default when 0)")
	return cmd
}
