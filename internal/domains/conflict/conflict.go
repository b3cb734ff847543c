// Package conflict guards the central venue invariant: for one venue and day the approved
// bookings and approved schedules never overlap.
package conflict

//go:generate go run go.uber.org/mock/mockgen -source=./conflict.go -destination=./mocks/conflict_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/shared"
	"sportshub/shared/constant"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const lockKeySeparator = "|"

// Interval is a time-of-day range. Only the clock part of Start and End is compared.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the interval has a positive length.
func (i Interval) Valid() bool {
	return shared.ClockOf(i.End) > shared.ClockOf(i.Start)
}

// Overlaps treats both intervals as half-open, so back-to-back slots do not collide.
func Overlaps(a, b Interval) bool {
	return shared.ClockOf(a.Start) < shared.ClockOf(b.End) && shared.ClockOf(a.End) > shared.ClockOf(b.Start)
}

// Slot is a candidate reservation of a venue.
type Slot struct {
	VenueID string
	Date    time.Time
	Interval
}

// LockKey identifies the venue/day pair an approval serialises on.
func (s Slot) LockKey() string {
	return s.VenueID + lockKeySeparator + s.Date.Format(constant.DayFormat)
}

// Source yields the approved intervals of one table for a venue and day, read inside tx.
type Source interface {
	ApprovedIntervalsTx(ctx context.Context, sqltx *sqlx.Tx, venueID string, date time.Time, excludeID string) ([]Interval, error)
}

type Checker interface {
	// HasConflict must run inside the transaction that writes the approval.
	HasConflict(ctx context.Context, sqltx *sqlx.Tx, slot Slot, excludeID string) (bool, error)
}

type checkerImpl struct {
	transactor postgres.Transactor
	sources    []Source
	otel       otel.Otel
}

func NewChecker(transactor postgres.Transactor, otel otel.Otel, sources ...Source) Checker {
	return &checkerImpl{
		transactor: transactor,
		sources:    sources,
		otel:       otel,
	}
}

func (c *checkerImpl) HasConflict(ctx context.Context, sqltx *sqlx.Tx, slot Slot, excludeID string) (conflict bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".conflict.HasConflict")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"venue_id": slot.VenueID,
		"date":     slot.Date.Format(constant.DayFormat),
	})

	if err = c.transactor.AdvisoryLock(ctx, sqltx, slot.LockKey()); err != nil {
		log.Error().Err(err).Str("key", slot.LockKey()).Msg("failed to lock venue day")

		return false, fmt.Errorf("failed to lock venue day: %w", err)
	}

	for _, source := range c.sources {
		intervals, err := source.ApprovedIntervalsTx(ctx, sqltx, slot.VenueID, slot.Date, excludeID)
		if err != nil {
			log.Error().Err(err).Msg("failed to load approved intervals")

			return false, fmt.Errorf("failed to load approved intervals: %w", err)
		}

		for _, interval := range intervals {
			if Overlaps(slot.Interval, interval) {
				log.Info().
					Str("venue_id", slot.VenueID).
					Str("date", slot.Date.Format(constant.DayFormat)).
					Msg("venue slot already taken")

				return true, nil
			}
		}
	}

	return false, nil
}
