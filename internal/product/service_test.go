package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		p := Product{Title: "Oak Table", Price: 450}
		mockRepo.On("Create", ctx, p).Return(int64(1), nil)

		id, err := svc.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("TitleRequired", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, Product{Title: "   ", Price: 100})
		assert.ErrorIs(t, err, ErrTitleRequired)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, Product{Title: "Oak Table", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFoundPassesThrough", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Update", ctx, mock.Anything).Return(ErrNotFound)

		err := svc.Update(ctx, Product{ID: 99, Title: "Ghost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		err := svc.Update(ctx, Product{ID: 1, Title: "Oak Table", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
