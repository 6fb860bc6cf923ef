package recipe

import (
	"context"

	"foodgram/domain"
	"foodgram/entities"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error {
	return m.Called(ctx, recipe, tags, ingredients).Error(0)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error {
	return m.Called(ctx, recipe, tags, ingredients).Error(0)
}

func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page domain.Pagination) ([]*entities.Recipe, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) IsNameTaken(ctx context.Context, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *MockRecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *MockRecipeRepository) GetFavoritedIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockRecipeRepository) AddToShoppingCart(ctx context.Context, userID, recipeID string) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *MockRecipeRepository) RemoveFromShoppingCart(ctx context.Context, userID, recipeID string) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *MockRecipeRepository) GetInCartIDs(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockRecipeRepository) GetShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingListItem), args.Error(1)
}

// ingredientCatalog and tagCatalog serve lookups from memory.
type ingredientCatalog map[string]*entities.Ingredient

func (c ingredientCatalog) GetIngredients(context.Context, domain.IngredientFilter) ([]*entities.Ingredient, error) {
	res := make([]*entities.Ingredient, 0, len(c))
	for _, ingredient := range c {
		res = append(res, ingredient)
	}
	return res, nil
}

func (c ingredientCatalog) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	if ingredient, ok := c[id]; ok {
		return ingredient, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c ingredientCatalog) GetIngredientsByIDs(_ context.Context, ids []string) ([]*entities.Ingredient, error) {
	res := make([]*entities.Ingredient, 0, len(ids))
	for _, id := range ids {
		if ingredient, ok := c[id]; ok {
			res = append(res, ingredient)
		}
	}
	return res, nil
}

type tagCatalog map[string]*entities.Tag

func (c tagCatalog) GetTags(context.Context) ([]*entities.Tag, error) {
	res := make([]*entities.Tag, 0, len(c))
	for _, t := range c {
		res = append(res, t)
	}
	return res, nil
}

func (c tagCatalog) GetTagByID(_ context.Context, id string) (*entities.Tag, error) {
	if t, ok := c[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (c tagCatalog) GetTagsByIDs(_ context.Context, ids []string) ([]*entities.Tag, error) {
	res := make([]*entities.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := c[id]; ok {
			res = append(res, t)
		}
	}
	return res, nil
}

type MockSubscriptionReader struct {
	mock.Mock
}

func (m *MockSubscriptionReader) GetSubscribedAuthorIDs(ctx context.Context, userID string, authorIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, authorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type MockAwsS3 struct {
	mock.Mock
}

func (m *MockAwsS3) UploadFile(ctx context.Context, fileName string, file []byte, folder string, allowedTypes ...string) (string, error) {
	args := m.Called(ctx, fileName, file, folder)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) DeleteFile(ctx context.Context, objectKey string) error {
	return m.Called(ctx, objectKey).Error(0)
}

func (m *MockAwsS3) GetObjectKeyFromLink(link string) string {
	return m.Called(link).String(0)
}

func (m *MockAwsS3) GetPublicLinkKey(objectKey string) string {
	return m.Called(objectKey).String(0)
}
