package main

import (
	"fmt"
	"io"

	"calendar-assistant/pkg/assistant"
)

func printScheduled(out io.Writer, res *assistant.ScheduleResult) {
	fmt.Fprintln(out, "\nEvent created successfully!")
	printEvent(out, res.Event)
}

func printEvent(out io.Writer, e assistant.Event) {
	title := e.Summary
	if title == "" {
		title = e.Title
	}
	link := e.Link
	if link == "" {
		link = "Not available"
	}

	fmt.Fprintf(out, "Title: %s\n", title)
	fmt.Fprintf(out, "Start: %s\n", formatTime(e.Start))
	fmt.Fprintf(out, "End: %s\n", formatTime(e.End))
	fmt.Fprintf(out, "Calendar Link: %s\n", link)
}

func formatTime(v assistant.TimeValue) string {
	if v.DateTime != "" {
		return v.DateTime
	}
	return v.Date
}
