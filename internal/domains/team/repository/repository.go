package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/internal/domains/team/model"
	gDto "sportshub/shared/dto"
	gRepo "sportshub/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Team interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Team) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Team, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Team, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.TeamDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.TeamDetail, error)
	CountDetail(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type teamImpl struct {
	gRepo.Repository[model.Team]
	detail gRepo.Repository[model.TeamDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Team {
	return &teamImpl{
		Repository: gRepo.NewRepository[model.Team](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.TeamDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *teamImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.TeamDetail, error) {
	return r.detail.Get(ctx, filter) //nolint:wrapcheck
}

func (r *teamImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.TeamDetail, error) {
	return r.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *teamImpl) CountDetail(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.detail.Count(ctx, filter) //nolint:wrapcheck
}

// Member stores rosters. Rows are only ever replaced as a whole set.
type Member interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.TeamMember) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TeamMember, error)
}

func NewMember(db *postgres.Connection, otel otel.Otel) Member {
	repo := gRepo.NewRepository[model.TeamMember](model.MemberEntityName, model.MemberTableName, model.MemberFieldID, db, otel)

	return &repo
}
