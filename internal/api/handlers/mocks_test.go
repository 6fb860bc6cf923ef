package handlers

import (
	"context"

	"foodgram/domain"

	"github.com/stretchr/testify/mock"
)

type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page domain.Pagination) ([]domain.Recipe, int64, error) {
	args := m.Called(ctx, filter, page)
	recipes, _ := args.Get(0).([]domain.Recipe)
	return recipes, args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeService) GetRecipeByID(ctx context.Context, id string, userID string) (domain.Recipe, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.Recipe, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id string, req domain.RecipeRequest, userID string) (domain.Recipe, error) {
	args := m.Called(ctx, id, req, userID)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockRecipeService) AddFavorite(ctx context.Context, id string, userID string) (domain.RecipeMinified, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.RecipeMinified), args.Error(1)
}

func (m *MockRecipeService) RemoveFavorite(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockRecipeService) AddToShoppingCart(ctx context.Context, id string, userID string) (domain.RecipeMinified, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.RecipeMinified), args.Error(1)
}

func (m *MockRecipeService) RemoveFromShoppingCart(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockRecipeService) DownloadShoppingCart(ctx context.Context, userID string) ([]byte, error) {
	args := m.Called(ctx, userID)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisteredUser, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.RegisteredUser), args.Error(1)
}

func (m *MockUserService) GetUsers(ctx context.Context, page domain.Pagination, requesterID string) ([]domain.User, int64, error) {
	args := m.Called(ctx, page, requesterID)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id string, requesterID string) (domain.User, error) {
	args := m.Called(ctx, id, requesterID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, userID string) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.LoginResponse), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockUserService) SetPassword(ctx context.Context, req domain.SetPasswordRequest, userID string) error {
	return m.Called(ctx, req, userID).Error(0)
}

func (m *MockUserService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockUserService) ResetPasswordConfirm(ctx context.Context, req domain.ResetPasswordConfirmRequest) error {
	return m.Called(ctx, req).Error(0)
}

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, userID, authorID string, recipesLimit int) (domain.UserWithRecipes, error) {
	args := m.Called(ctx, userID, authorID, recipesLimit)
	return args.Get(0).(domain.UserWithRecipes), args.Error(1)
}

func (m *MockSubscriptionService) Unsubscribe(ctx context.Context, userID, authorID string) error {
	return m.Called(ctx, userID, authorID).Error(0)
}

func (m *MockSubscriptionService) GetSubscriptions(ctx context.Context, userID string, page domain.Pagination, recipesLimit int) ([]domain.UserWithRecipes, int64, error) {
	args := m.Called(ctx, userID, page, recipesLimit)
	authors, _ := args.Get(0).([]domain.UserWithRecipes)
	return authors, args.Get(1).(int64), args.Error(2)
}

type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error) {
	args := m.Called(ctx, filter)
	ingredients, _ := args.Get(0).([]domain.Ingredient)
	return ingredients, args.Error(1)
}

func (m *MockIngredientService) GetIngredientByID(ctx context.Context, id string) (domain.Ingredient, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Ingredient), args.Error(1)
}

type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) GetTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]domain.Tag)
	return tags, args.Error(1)
}

func (m *MockTagService) GetTagByID(ctx context.Context, id string) (domain.Tag, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Tag), args.Error(1)
}
