package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/internal/domains/contact/model"
	gDto "sportshub/shared/dto"
	gRepo "sportshub/shared/repository"
)

type Contact interface {
	Insert(ctx context.Context, model model.ContactRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ContactRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ContactRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ContactRequest]
}

func New(db *postgres.Connection, otel otel.Otel) Contact {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContactRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
