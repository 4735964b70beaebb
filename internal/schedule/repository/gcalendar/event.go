package gcalendar

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/internal/schedule/repository"
	"calendar-assistant/pkg/gcalendar"
)

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.EventConfirmation, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return model.EventConfirmation{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	ev := opt.Event
	created, err := client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:    r.cfg.CalendarID,
		Summary:       ev.Title,
		Description:   ev.Description,
		StartTime:     ev.Start.Instant,
		EndTime:       ev.End.Instant,
		StartTimezone: ev.Start.Zone,
		EndTimezone:   ev.End.Zone,
	})
	if err != nil {
		return model.EventConfirmation{}, fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}

	return toConfirmation(*created), nil
}

func (r *implRepository) ListUpcoming(ctx context.Context, opt repository.ListUpcomingOptions) ([]model.EventConfirmation, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	from := opt.From
	if from.IsZero() {
		from = time.Now()
	}

	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.cfg.CalendarID,
		TimeMin:    from,
		MaxResults: int64(opt.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	out := make([]model.EventConfirmation, 0, len(events))
	for _, e := range events {
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
		out = append(out, toConfirmation(e))
	}
	return out, nil
}

func toConfirmation(e gcalendar.Event) model.EventConfirmation {
	return model.EventConfirmation{
		ID:          e.ID,
		Title:       e.Summary,
		Description: e.Description,
		Start:       model.TimePoint{Instant: e.StartTime, Zone: e.StartTimezone},
		End:         model.TimePoint{Instant: e.EndTime, Zone: e.EndTimezone},
		AllDay:      e.AllDay,
		Link:        e.HtmlLink,
	}
}
