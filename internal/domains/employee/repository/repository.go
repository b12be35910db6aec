package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/shared/docstore"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Employee interface {
	Insert(ctx context.Context, model model.Employee) (string, error)
	List(ctx context.Context) ([]model.Employee, error)
	Get(ctx context.Context, id string) (model.Employee, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Employee, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, id string) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Employee]
}

func New(store docstore.Store, otel otel.Otel) Employee {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Employee](model.EntityName, model.CollectionName, store, otel),
	}
}
