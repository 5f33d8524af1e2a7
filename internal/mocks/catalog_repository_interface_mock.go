// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/repository"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) GetActive(ctx context.Context) (*repository.CatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) Create(ctx context.Context, combos []repository.ComboDefinition, createdBy string) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, combos, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ReplaceItems(ctx context.Context, comboID int, items []model.MenuItem, updatedBy string) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, comboID, items, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) List(ctx context.Context, limit int) ([]repository.CatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CatalogConfig), args.Error(1)
}
