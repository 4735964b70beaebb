package usecase

import (
	"context"
	"errors"

	"calendar-assistant/internal/schedule"
	"calendar-assistant/internal/schedule/repository"
	"calendar-assistant/pkg/gcalendar"
)

// ListUpcoming returns at most input.Limit events starting from now.
func (uc *implUseCase) ListUpcoming(ctx context.Context, input schedule.ListUpcomingInput) (schedule.ListUpcomingOutput, error) {
	limit, err := uc.resolveLimit(input.Limit)
	if err != nil {
		return schedule.ListUpcomingOutput{}, err
	}

	events, err := uc.repo.ListUpcoming(ctx, repository.ListUpcomingOptions{
		From:  uc.now(),
		Limit: limit,
	})
	if err != nil {
		if errors.Is(err, gcalendar.ErrUnauthorized) {
			uc.l.Errorf(ctx, "uc.ListUpcoming: calendar authorization failed, re-run scripts/gcal-auth: %v", err)
		} else {
			uc.l.Errorf(ctx, "uc.ListUpcoming repo.ListUpcoming: %v", err)
		}
		return schedule.ListUpcomingOutput{}, err
	}

	return schedule.ListUpcomingOutput{Events: events}, nil
}

// resolveLimit applies the default and caps the value at MaxUpcomingLimit.
func (uc *implUseCase) resolveLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, schedule.ErrInvalidLimit
	case limit == 0:
		return uc.upcomingLimit, nil
	case limit > schedule.MaxUpcomingLimit:
		return schedule.MaxUpcomingLimit, nil
	default:
		return limit, nil
	}
}
