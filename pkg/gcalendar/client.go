package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
// tokenPath is only used for installed-app credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string, opts ...option.ClientOption) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath, opts...)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON bytes.
// Service Account JSON is used directly. Installed-app JSON needs the token stored at
// tokenPath (see scripts/gcal-auth); refreshed tokens are written back to it.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string, opts ...option.ClientOption) (*Client, error) {
	// Token refreshes happen long after the constructing request is gone.
	ctx = context.WithoutCancel(ctx)

	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		return newClient(ctx, jwtConfig.TokenSource(ctx), opts...)
	}

	// Fallback: OAuth2 installed app credentials
	oauthConfig, oauthErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", oauthErr)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("installed-app credentials need a token, run scripts/gcal-auth: %w", err)
	}

	tokenSource := newPersistingTokenSource(oauthConfig.TokenSource(ctx, tok), tokenPath, tok)
	return newClient(ctx, oauth2.ReuseTokenSource(tok, tokenSource), opts...)
}

func newClient(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	endZone := req.EndTimezone
	if endZone == "" {
		endZone = req.StartTimezone
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			// RFC3339 keeps the offset; TimeZone keeps the IANA name for display.
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.StartTimezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: endZone,
		},
	}

	created, err := c.service.Events.Insert(calendarIDOrDefault(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", classify(err))
	}

	result := toEvent(created)
	if result.StartTime.IsZero() {
		result.StartTime, result.StartTimezone = req.StartTime, req.StartTimezone
	}
	if result.EndTime.IsZero() {
		result.EndTime, result.EndTimezone = req.EndTime, endZone
	}
	if result.Summary == "" {
		result.Summary = req.Summary
	}
	if result.Description == "" {
		result.Description = req.Description
	}
	return result, nil
}

// ListEvents lists events starting at or after TimeMin, expanded and ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarIDOrDefault(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", classify(err))
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, *toEvent(item))
	}
	return events, nil
}

func calendarIDOrDefault(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

func toEvent(item *calendar.Event) *Event {
	ev := &Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Location:    item.Location,
	}
	ev.StartTime, ev.StartTimezone, ev.AllDay = parseEventDateTime(item.Start)
	ev.EndTime, ev.EndTimezone, _ = parseEventDateTime(item.End)
	return ev
}

// parseEventDateTime reads either a timed or an all-day EventDateTime.
func parseEventDateTime(dt *calendar.EventDateTime) (time.Time, string, bool) {
	if dt == nil {
		return time.Time{}, "", false
	}

	loc := time.UTC
	if dt.TimeZone != "" {
		if l, err := time.LoadLocation(dt.TimeZone); err == nil {
			loc = l
		}
	}

	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return time.Time{}, dt.TimeZone, false
		}
		if dt.TimeZone != "" {
			t = t.In(loc)
		}
		return t, dt.TimeZone, false
	}

	if dt.Date != "" {
		t, err := time.ParseInLocation(time.DateOnly, dt.Date, loc)
		if err != nil {
			return time.Time{}, dt.TimeZone, true
		}
		return t, dt.TimeZone, true
	}

	return time.Time{}, dt.TimeZone, false
}
