package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/internal/domains/conflict"
	"sportshub/internal/domains/schedule/model"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	gRepo "sportshub/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Schedule interface {
	conflict.Source

	Insert(ctx context.Context, model model.Schedule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Schedule, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Schedule, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.ScheduleDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ScheduleDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Schedule]
	detail gRepo.Repository[model.ScheduleDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Schedule](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.ScheduleDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.ScheduleDetail, error) {
	return r.detail.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ScheduleDetail, error) {
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

	schedules, err := r.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filter, model.FieldStartTime, model.FieldEndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved schedules: %w", err)
	}

	intervals := make([]conflict.Interval, len(schedules))
	for i, schedule := range schedules {
		intervals[i] = conflict.Interval{Start: schedule.StartTime, End: schedule.EndTime}
	}

	return intervals, nil
}
