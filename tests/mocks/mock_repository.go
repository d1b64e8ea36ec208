package mocks

import (
	"context"

	"knowledgebase/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindAll() ([]models.Article, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByID(id string) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementViewCount(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) Like(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockAnalyzer
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, articles []models.Article) (*models.InsightSummary, error) {
	args := m.Called(ctx, articles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsightSummary), args.Error(1)
}
