package usecase

import (
	"context"
	"errors"
	"strings"

	"calendar-assistant/internal/model"
	"calendar-assistant/internal/queryparser"
	"calendar-assistant/internal/schedule"
	"calendar-assistant/internal/schedule/repository"
	"calendar-assistant/internal/validation"
	"calendar-assistant/pkg/gcalendar"
)

// ScheduleFromQuery runs Parsing -> Validating -> Creating for a free-text request.
func (uc *implUseCase) ScheduleFromQuery(ctx context.Context, input schedule.ScheduleQueryInput) (schedule.ScheduleOutput, error) {
	reference := uc.now().In(uc.loc)

	outcome, err := uc.parser.Parse(ctx, input.Query, reference)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleFromQuery parser.Parse: %v", err)
		uc.metrics.observe(sourceQuery, outcomeParseFailed)
		return schedule.ScheduleOutput{}, err
	}

	var parsed queryparser.Parsed
	switch o := outcome.(type) {
	case queryparser.Rejected:
		uc.l.Infof(ctx, "uc.ScheduleFromQuery: query rejected: %s", o.Reason)
		uc.metrics.observe(sourceQuery, outcomeRejected)
		return schedule.ScheduleOutput{}, &schedule.RejectionError{Reason: o.Reason}
	case queryparser.Parsed:
		parsed = o
	default:
		return schedule.ScheduleOutput{}, queryparser.ErrMalformedResponse
	}

	event, err := validation.Validate(parsed.Event)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ScheduleFromQuery validation.Validate: %v", err)
		uc.metrics.observe(sourceQuery, outcomeInvalid)
		return schedule.ScheduleOutput{}, err
	}

	confirmation, err := uc.create(ctx, sourceQuery, event)
	if err != nil {
		return schedule.ScheduleOutput{}, err
	}
	return schedule.ScheduleOutput{Event: confirmation, Category: string(parsed.Category)}, nil
}

// ScheduleEvent runs Validating -> Creating for a pre-structured event.
func (uc *implUseCase) ScheduleEvent(ctx context.Context, input schedule.ScheduleEventInput) (schedule.ScheduleOutput, error) {
	event, err := validation.Validate(input.Event)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ScheduleEvent validation.Validate: %v", err)
		uc.metrics.observe(sourceEvent, outcomeInvalid)
		return schedule.ScheduleOutput{}, err
	}

	confirmation, err := uc.create(ctx, sourceEvent, event)
	if err != nil {
		return schedule.ScheduleOutput{}, err
	}
	return schedule.ScheduleOutput{Event: confirmation}, nil
}

func (uc *implUseCase) create(ctx context.Context, source string, event model.StructuredEvent) (model.EventConfirmation, error) {
	confirmation, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{Event: event})
	if err != nil {
		if errors.Is(err, gcalendar.ErrUnauthorized) {
			uc.l.Errorf(ctx, "uc.create: calendar authorization failed, re-run scripts/gcal-auth: %v", err)
		} else {
			uc.l.Errorf(ctx, "uc.create repo.CreateEvent: %v", err)
		}
		uc.metrics.observe(source, outcomeCreateFailed)
		return model.EventConfirmation{}, err
	}

	uc.l.Infof(ctx, "uc.create: event %s created: %q %s - %s (%s)",
		confirmation.ID, strings.TrimSpace(event.Title),
		event.Start.Instant.Format("2006-01-02 15:04"), event.End.Instant.Format("15:04"), event.Start.Zone)
	uc.metrics.observe(source, outcomeCreated)
	return confirmation, nil
}
