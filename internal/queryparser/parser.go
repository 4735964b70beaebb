package queryparser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/internal/validation"
	"calendar-assistant/pkg/llmprovider"
)

const (
	reasonEmptyQuery    = "query is empty"
	reasonUninterpreted = "query could not be interpreted as a scheduling request"
)

func (p *implParser) Parse(ctx context.Context, query string, reference time.Time) (Outcome, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Rejected{Reason: reasonEmptyQuery}, nil
	}

	ref := p.dates.Reference(reference)
	system := llmprovider.TextMessage(llmprovider.RoleSystem, buildSystemPrompt(p.dates.Zone()))
	req := &llmprovider.Request{
		SystemInstruction: &system,
		Messages: []llmprovider.Message{
			llmprovider.TextMessage(llmprovider.RoleUser, buildUserPrompt(query, ref)),
		},
		Temperature:    0,
		MaxTokens:      p.maxTokens,
		ResponseFormat: llmprovider.FormatJSON,
	}

	resp, err := p.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	raw := resp.Content.Text()
	p.l.Debugf(ctx, "queryparser.Parse: raw completion %q", raw)

	reply, err := decodeReply(raw)
	if err != nil {
		p.l.Warnf(ctx, "queryparser.Parse: %v. Raw=%q", err, raw)
		return nil, err
	}

	if reply.Event == nil {
		reason := strings.TrimSpace(reply.Error.Reason)
		if reason == "" {
			reason = reasonUninterpreted
		}
		return Rejected{Reason: reason}, nil
	}

	event := *reply.Event
	category := parseCategory(reply.Category, query, event.EventTitle())
	p.fillMissingEnd(&event, category)

	return Parsed{Event: event, Category: category}, nil
}

// decodeReply extracts exactly one reply arm from the completion text.
func decodeReply(raw string) (completionReply, error) {
	var reply completionReply

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return reply, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}

	// Sanitizing only runs on replies that are not JSON as-is, so fences
	// quoted inside string values survive.
	if err := json.Unmarshal([]byte(trimmed), &reply); err != nil {
		reply = completionReply{}
		cleaned := sanitizeJSONResponse(trimmed)
		if cleaned == "" {
			return reply, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
		}
		if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
			return reply, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	switch {
	case reply.Event != nil && reply.Error != nil:
		return reply, fmt.Errorf("%w: both event and error present", ErrMalformedResponse)
	case reply.Event == nil && reply.Error == nil:
		return reply, fmt.Errorf("%w: neither event nor error present", ErrMalformedResponse)
	}
	return reply, nil
}

// fillMissingEnd derives end from start and the category default duration when
// the model left it out. Anything it cannot resolve is left for validation to report.
func (p *implParser) fillMissingEnd(event *model.EventPayload, category Category) {
	if event.End != nil && strings.TrimSpace(event.End.DateTime) != "" {
		return
	}
	if event.Start == nil || event.Start.DateTime == "" {
		return
	}

	loc := p.dates.Location()
	zone := event.Start.TimeZone
	if zone != "" {
		l, err := time.LoadLocation(zone)
		if err != nil {
			return
		}
		loc = l
	}

	start, ok := validation.ParseDateTime(event.Start.DateTime, loc)
	if !ok {
		return
	}

	endZone := zone
	if event.End != nil && event.End.TimeZone != "" {
		endZone = event.End.TimeZone
	}
	event.End = &model.TimePayload{
		DateTime: start.Add(DefaultDuration(category)).In(loc).Format(time.RFC3339),
		TimeZone: endZone,
	}
}
