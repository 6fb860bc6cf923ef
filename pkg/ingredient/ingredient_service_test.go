package ingredient

import (
	"context"
	"errors"
	"testing"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetIngredients(t *testing.T) {
	repo := new(MockIngredientRepository)
	svc := NewIngredientService(repo)
	ctx := context.Background()

	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", MeasurementUnit: "g"}
	filter := domain.IngredientFilter{Name: "fl"}
	repo.On("GetIngredients", ctx, filter).Return([]*entities.Ingredient{flour}, nil)

	res, err := svc.GetIngredients(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, []domain.Ingredient{{ID: flour.ID.String(), Name: "Flour", MeasurementUnit: "g"}}, res)
	repo.AssertExpectations(t)
}

func TestGetIngredients_Empty(t *testing.T) {
	repo := new(MockIngredientRepository)
	svc := NewIngredientService(repo)

	repo.On("GetIngredients", mock.Anything, mock.Anything).Return(nil, nil)

	res, err := svc.GetIngredients(context.Background(), domain.IngredientFilter{})
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestGetIngredientByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := new(MockIngredientRepository)
		repo.On("GetIngredientByID", ctx, id.String()).
			Return(&entities.Ingredient{ID: id, Name: "Salt", MeasurementUnit: "g"}, nil)

		res, err := NewIngredientService(repo).GetIngredientByID(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, "Salt", res.Name)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockIngredientRepository)
		repo.On("GetIngredientByID", ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewIngredientService(repo).GetIngredientByID(ctx, id.String())
		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo := new(MockIngredientRepository)

		_, err := NewIngredientService(repo).GetIngredientByID(ctx, "42")
		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
		repo.AssertNotCalled(t, "GetIngredientByID", mock.Anything, mock.Anything)
	})

	t.Run("database error", func(t *testing.T) {
		repo := new(MockIngredientRepository)
		repo.On("GetIngredientByID", ctx, id.String()).Return(nil, errors.New("conn reset"))

		_, err := NewIngredientService(repo).GetIngredientByID(ctx, id.String())
		assert.EqualError(t, err, "conn reset")
	})
}
