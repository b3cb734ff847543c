package conflict_test

import (
	"context"
	"errors"
	"sportshub/infras/otel/mocks"
	pgMocks "sportshub/infras/postgres/mocks"
	"sportshub/internal/domains/conflict"
	conflictMocks "sportshub/internal/domains/conflict/mocks"
	"sportshub/shared"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func interval(t *testing.T, start, end string) conflict.Interval {
	t.Helper()

	s, err := shared.ParseClock(start)
	require.NoError(t, err)

	e, err := shared.ParseClock(end)
	require.NoError(t, err)

	return conflict.Interval{Start: s, End: e}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{name: "identical", a: [2]string{"10:00", "12:00"}, b: [2]string{"10:00", "12:00"}, want: true},
		{name: "partial", a: [2]string{"10:00", "12:00"}, b: [2]string{"11:00", "13:00"}, want: true},
		{name: "contained", a: [2]string{"09:00", "17:00"}, b: [2]string{"12:00", "12:30"}, want: true},
		{name: "touching end to start", a: [2]string{"10:00", "12:00"}, b: [2]string{"12:00", "14:00"}, want: false},
		{name: "touching start to end", a: [2]string{"12:00", "14:00"}, b: [2]string{"10:00", "12:00"}, want: false},
		{name: "disjoint", a: [2]string{"08:00", "09:00"}, b: [2]string{"15:00", "16:00"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := interval(t, tt.a[0], tt.a[1])
			b := interval(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, conflict.Overlaps(a, b))
			assert.Equal(t, tt.want, conflict.Overlaps(b, a))
		})
	}
}

func TestOverlaps_ScannedTimeOfDay(t *testing.T) {
	// lib/pq scans TIME columns onto year 0000; requests are parsed onto 2000-01-01.
	scanned := conflict.Interval{
		Start: time.Date(0, time.January, 1, 11, 0, 0, 0, time.UTC),
		End:   time.Date(0, time.January, 1, 13, 0, 0, 0, time.UTC),
	}

	assert.True(t, conflict.Overlaps(interval(t, "10:00", "12:00"), scanned))
}

func TestInterval_Valid(t *testing.T) {
	assert.True(t, interval(t, "10:00", "10:30").Valid())
	assert.False(t, interval(t, "10:00", "10:00").Valid())
	assert.False(t, interval(t, "12:00", "10:00").Valid())
}

func TestChecker_HasConflict(t *testing.T) {
	day := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	slot := conflict.Slot{VenueID: "venue-1", Date: day, Interval: interval(t, "10:00", "12:00")}

	tests := []struct {
		name      string
		setupMock func(tx *pgMocks.MockTransactor, bookings, schedules *conflictMocks.MockSource)
		want      bool
		wantErr   bool
	}{
		{
			name: "free slot",
			setupMock: func(tx *pgMocks.MockTransactor, bookings, schedules *conflictMocks.MockSource) {
				tx.EXPECT().AdvisoryLock(gomock.Any(), gomock.Any(), "venue-1|2025-03-14").Return(nil)
				bookings.EXPECT().ApprovedIntervalsTx(gomock.Any(), gomock.Any(), "venue-1", day, "b-1").
					Return([]conflict.Interval{interval(t, "08:00", "10:00")}, nil)
				schedules.EXPECT().ApprovedIntervalsTx(gomock.Any(), gomock.Any(), "venue-1", day, "b-1").
					Return([]conflict.Interval{interval(t, "12:00", "13:00")}, nil)
			},
		},
		{
			name: "clash with approved booking skips schedules",
			setupMock: func(tx *pgMocks.MockTransactor, bookings, _ *conflictMocks.MockSource) {
				tx.EXPECT().AdvisoryLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				bookings.EXPECT().ApprovedIntervalsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]conflict.Interval{interval(t, "11:30", "12:30")}, nil)
			},
			want: true,
		},
		{
			name: "clash with approved schedule",
			setupMock: func(tx *pgMocks.MockTransactor, bookings, schedules *conflictMocks.MockSource) {
				tx.EXPECT().AdvisoryLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				bookings.EXPECT().ApprovedIntervalsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				schedules.EXPECT().ApprovedIntervalsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]conflict.Interval{interval(t, "09:00", "10:30")}, nil)
			},
			want: true,
		},
		{
			name: "lock failure",
			setupMock: func(tx *pgMocks.MockTransactor, _, _ *conflictMocks.MockSource) {
				tx.EXPECT().AdvisoryLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
		{
			name: "source failure",
			setupMock: func(tx *pgMocks.MockTransactor, bookings, _ *conflictMocks.MockSource) {
				tx.EXPECT().AdvisoryLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				bookings.EXPECT().ApprovedIntervalsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			transactor := pgMocks.NewMockTransactor(ctrl)
			bookings := conflictMocks.NewMockSource(ctrl)
			schedules := conflictMocks.NewMockSource(ctrl)

			tt.setupMock(transactor, bookings, schedules)

			checker := conflict.NewChecker(transactor, mocks.NewOtel(), bookings, schedules)
			got, err := checker.HasConflict(context.Background(), nil, slot, "b-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
