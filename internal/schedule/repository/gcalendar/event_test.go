package gcalendar

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/internal/schedule/repository"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	created   gcalendar.CreateEventRequest
	listed    gcalendar.ListEventsRequest
	events    []gcalendar.Event
	err       error
	deadlined bool
}

func (f *fakeClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.created = req
	_, f.deadlined = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return &gcalendar.Event{
		ID:            "evt-1",
		Summary:       req.Summary,
		Description:   req.Description,
		HtmlLink:      "https://calendar.google.com/event?eid=evt-1",
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		StartTimezone: req.StartTimezone,
		EndTimezone:   req.EndTimezone,
	}, nil
}

func (f *fakeClient) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.listed = req
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func structuredEvent(t *testing.T) model.StructuredEvent {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	start := time.Date(2024, 3, 21, 9, 0, 0, 0, loc)
	return model.StructuredEvent{
		Title:       "Cleaning session",
		Description: "kitchen",
		Start:       model.TimePoint{Instant: start, Zone: "America/Los_Angeles"},
		End:         model.TimePoint{Instant: start.Add(2 * time.Hour), Zone: "America/Los_Angeles"},
	}
}

func TestCreateEvent(t *testing.T) {
	fc := &fakeClient{}
	r := newRepository(log.NewNop(), Config{Timeout: time.Second}, func(ctx context.Context) (calendarClient, error) {
		return fc, nil
	})

	ev := structuredEvent(t)
	conf, err := r.CreateEvent(context.Background(), repository.CreateEventOptions{Event: ev})
	require.NoError(t, err)

	assert.Equal(t, "primary", fc.created.CalendarID)
	assert.Equal(t, "Cleaning session", fc.created.Summary)
	assert.Equal(t, "America/Los_Angeles", fc.created.StartTimezone)
	assert.True(t, fc.deadlined, "provider call must be bounded")

	assert.Equal(t, "evt-1", conf.ID)
	assert.Equal(t, ev.Title, conf.Title)
	assert.True(t, conf.Start.Instant.Equal(ev.Start.Instant))
	assert.Equal(t, 2*time.Hour, conf.End.Instant.Sub(conf.Start.Instant))
	assert.NotEmpty(t, conf.Link)
}

func TestCreateEvent_ProviderErrorKeepsCause(t *testing.T) {
	fc := &fakeClient{err: gcalendar.ErrUnauthorized}
	r := newRepository(log.NewNop(), Config{}, func(ctx context.Context) (calendarClient, error) {
		return fc, nil
	})

	_, err := r.CreateEvent(context.Background(), repository.CreateEventOptions{Event: structuredEvent(t)})
	assert.ErrorIs(t, err, repository.ErrFailedToCreate)
	assert.ErrorIs(t, err, gcalendar.ErrUnauthorized)
}

func TestListUpcoming(t *testing.T) {
	fc := &fakeClient{events: []gcalendar.Event{
		{ID: "a", Summary: "first"},
		{ID: "b", Summary: "second"},
		{ID: "c", Summary: "third"},
	}}
	r := newRepository(log.NewNop(), Config{CalendarID: "team"}, func(ctx context.Context) (calendarClient, error) {
		return fc, nil
	})

	from := time.Date(2024, 3, 20, 18, 0, 0, 0, time.UTC)
	events, err := r.ListUpcoming(context.Background(), repository.ListUpcomingOptions{From: from, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, "team", fc.listed.CalendarID)
	assert.True(t, fc.listed.TimeMin.Equal(from))
	assert.EqualValues(t, 2, fc.listed.MaxResults)
	require.Len(t, events, 2)
	assert.Equal(t, "first", events[0].Title)
	assert.Equal(t, "second", events[1].Title)
}

func TestGetClient_LazyOnceAndRetriesFailure(t *testing.T) {
	var calls atomic.Int32
	fail := atomic.Bool{}
	fail.Store(true)

	fc := &fakeClient{}
	r := newRepository(log.NewNop(), Config{}, func(ctx context.Context) (calendarClient, error) {
		calls.Add(1)
		if fail.Load() {
			return nil, errors.New("credentials.json not found")
		}
		return fc, nil
	})

	_, err := r.ListUpcoming(context.Background(), repository.ListUpcomingOptions{Limit: 1})
	require.ErrorIs(t, err, repository.ErrFailedToInit)
	assert.Contains(t, err.Error(), "credentials.json not found")

	fail.Store(false)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.getClient(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 2, calls.Load(), "one failed build and exactly one successful build")
}
