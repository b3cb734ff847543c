package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/internal/domains/booking/model"
	"sportshub/internal/domains/conflict"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	gRepo "sportshub/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	conflict.Source

	Insert(ctx context.Context, model model.Booking) error
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error)
	GetDetailForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.BookingDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	detail gRepo.Repository[model.BookingDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error) {
	return r.detail.Get(ctx, filter) //nolint:wrapcheck
}

// GetDetailForUpdateTx locks the booking row only; the joined sport and venue stay unlocked.
func (r *repositoryImpl) GetDetailForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.BookingDetail, error) {
	return r.detail.GetForUpdateTx(ctx, sqltx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
	return r.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) ApprovedIntervalsTx(ctx context.Context, sqltx *sqlx.Tx, venueID string, date time.Time, excludeID string) ([]conflict.Interval, error) {
	filter := gDto.And(
		gDto.Filter{Field: model.FieldVenueID, Value: venueID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldDate, Value: date.Format(constant.DayFormat), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: constant.StatusApproved, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)

	if excludeID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName,
		})
	}

	bookings, err := r.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filter, model.FieldStartTime, model.FieldEndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved bookings: %w", err)
	}

	intervals := make([]conflict.Interval, len(bookings))
	for i, booking := range bookings {
		intervals[i] = conflict.Interval{Start: booking.StartTime, End: booking.EndTime}
	}

	return intervals, nil
}
