package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/shared/docstore"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (string, error)
	List(ctx context.Context) ([]model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, id string) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(store docstore.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.CollectionName, store, otel),
	}
}
