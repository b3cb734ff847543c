package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sportshub/infras/mongo"
	"sportshub/infras/otel"
	"sportshub/internal/domains/post/model"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Post reads and writes one editorial collection. Lookups by an unknown or malformed id
// return the zero Post, like the relational repositories.
type Post interface {
	Insert(ctx context.Context, post model.Post) (string, error)
	Get(ctx context.Context, id string) (model.Post, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Post, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	collection *mongoDriver.Collection
	kind       model.Kind
	otel       otel.Otel
}

func New(conn *mongo.Connection, kind model.Kind, otel otel.Otel) Post {
	return &repositoryImpl{
		collection: conn.Database.Collection(kind.Collection()),
		kind:       kind,
		otel:       otel,
	}
}

func (r *repositoryImpl) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, r.kind, op))
}

func (r *repositoryImpl) Insert(ctx context.Context, post model.Post) (id string, err error) {
	ctx, scope := r.scope(ctx, "Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to insert %s: %w", r.kind, err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return constant.Empty, fmt.Errorf("unexpected %s id type %T", r.kind, result.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (post model.Post, err error) {
	ctx, scope := r.scope(ctx, "Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return post, nil
	}

	err = r.collection.FindOne(ctx, bson.M{model.FieldID: oid}).Decode(&post)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return model.Post{}, nil
	}

	if err != nil {
		return post, fmt.Errorf("failed to get %s: %w", r.kind, err)
	}

	return post, nil
}

// GetAll returns the newest posts first. Page and Limit are honoured when both are set.
func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams) (posts []model.Post, err error) {
	ctx, scope := r.scope(ctx, "GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	opts := options.Find().SetSort(bson.D{{Key: model.FieldCreatedAt, Value: -1}})

	if params.Limit > 0 {
		opts.SetLimit(int64(params.Limit))

		if params.Page > 0 {
			opts.SetSkip(int64((params.Page - 1) * params.Limit))
		}
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", r.kind, err)
	}
	defer cursor.Close(ctx)

	posts = []model.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.kind, err)
	}

	return posts, nil
}

func (r *repositoryImpl) Count(ctx context.Context) (total int, err error) {
	ctx, scope := r.scope(ctx, "Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.kind, err)
	}

	return int(count), nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, fields map[string]any) (err error) {
	ctx, scope := r.scope(ctx, "Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid %s id: %w", r.kind, err)
	}

	if _, err = r.collection.UpdateByID(ctx, oid, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("failed to update %s: %w", r.kind, err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.scope(ctx, "Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid %s id: %w", r.kind, err)
	}

	if _, err = r.collection.DeleteOne(ctx, bson.M{model.FieldID: oid}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind, err)
	}

	return nil
}
