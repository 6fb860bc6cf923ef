package recipe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/logger"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const imageFolder = "recipes"

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page domain.Pagination) ([]domain.Recipe, int64, error)
		GetRecipeByID(ctx context.Context, id string, userID string) (domain.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.RecipeRequest, userID string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error

		AddFavorite(ctx context.Context, id string, userID string) (domain.RecipeMinified, error)
		RemoveFavorite(ctx context.Context, id string, userID string) error
		AddToShoppingCart(ctx context.Context, id string, userID string) (domain.RecipeMinified, error)
		RemoveFromShoppingCart(ctx context.Context, id string, userID string) error
		DownloadShoppingCart(ctx context.Context, userID string) ([]byte, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		tagRepository        tag.TagRepository
		subscriptions        user.SubscriptionReader
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	tagRepository tag.TagRepository,
	subscriptions user.SubscriptionReader,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		tagRepository:        tagRepository,
		subscriptions:        subscriptions,
		s3:                   s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page domain.Pagination) ([]domain.Recipe, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}

	res, err := s.toRecipeResponses(ctx, recipes, filter.UserID)
	if err != nil {
		return nil, 0, err
	}
	return res, count, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string, userID string) (domain.Recipe, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}

	res, err := s.toRecipeResponses(ctx, []*entities.Recipe{recipe}, userID)
	if err != nil {
		return domain.Recipe{}, err
	}
	return res[0], nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.Recipe, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	tags, ingredients, image, err := s.validateRecipe(ctx, req, nil)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: *req.CookingTime,
	}

	objectKey, err := s.uploadImage(ctx, image)
	if err != nil {
		return domain.Recipe{}, err
	}
	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, tags, ingredients); err != nil {
		s.deleteImage(ctx, objectKey)
		return domain.Recipe{}, translateWriteError(err)
	}

	logger.Log(ctx).Info(ctx, "recipe created",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("author_id", userID),
	)

	return s.GetRecipeByID(ctx, recipe.ID.String(), userID)
}

// UpdateRecipe applies a partial update. Scalar fields left out of the request
// keep their values; tags and ingredients are always replaced.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.RecipeRequest, userID string) (domain.Recipe, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}

	tags, ingredients, image, err := s.validateRecipe(ctx, req, recipe)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe.AuthorID = authorID
	recipe.Author = nil
	recipe.Tags = nil
	recipe.Ingredients = nil
	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Text != "" {
		recipe.Text = req.Text
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}

	oldKey := ""
	newKey := ""
	if image != nil {
		newKey, err = s.uploadImage(ctx, image)
		if err != nil {
			return domain.Recipe{}, err
		}
		oldKey = s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		recipe.ImageURL = s.s3.GetPublicLinkKey(newKey)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, ingredients); err != nil {
		if newKey != "" {
			s.deleteImage(ctx, newKey)
		}
		return domain.Recipe{}, translateWriteError(err)
	}
	if oldKey != "" {
		s.deleteImage(ctx, oldKey)
	}

	return s.GetRecipeByID(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if key := s.s3.GetObjectKeyFromLink(recipe.ImageURL); key != "" {
		s.deleteImage(ctx, key)
	}

	logger.Log(ctx).Info(ctx, "recipe deleted", zap.String("recipe_id", id), zap.String("user_id", userID))
	return nil
}

func (s *recipeService) AddFavorite(ctx context.Context, id string, userID string) (domain.RecipeMinified, error) {
	return s.addLink(ctx, id, userID,
		s.recipeRepository.GetFavoritedIDs,
		s.recipeRepository.AddFavorite,
		domain.ErrAlreadyFavorited,
	)
}

func (s *recipeService) RemoveFavorite(ctx context.Context, id string, userID string) error {
	return s.removeLink(ctx, id, userID, s.recipeRepository.RemoveFavorite, domain.ErrFavoriteNotFound)
}

func (s *recipeService) AddToShoppingCart(ctx context.Context, id string, userID string) (domain.RecipeMinified, error) {
	return s.addLink(ctx, id, userID,
		s.recipeRepository.GetInCartIDs,
		s.recipeRepository.AddToShoppingCart,
		domain.ErrAlreadyInShoppingCart,
	)
}

func (s *recipeService) RemoveFromShoppingCart(ctx context.Context, id string, userID string) error {
	return s.removeLink(ctx, id, userID, s.recipeRepository.RemoveFromShoppingCart, domain.ErrShoppingCartNotFound)
}

// DownloadShoppingCart renders the aggregated shopping list as plain text, one
// "name unit - total" line per ingredient.
func (s *recipeService) DownloadShoppingCart(ctx context.Context, userID string) ([]byte, error) {
	items, err := s.recipeRepository.GetShoppingList(ctx, userID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s %s - %d\n", item.Name, item.MeasurementUnit, item.TotalAmount)
	}
	return []byte(b.String()), nil
}

func (s *recipeService) addLink(
	ctx context.Context,
	id, userID string,
	linked func(ctx context.Context, userID string, recipeIDs []string) (map[string]bool, error),
	add func(ctx context.Context, userID, recipeID string) error,
	conflict error,
) (domain.RecipeMinified, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeMinified{}, err
	}

	exists, err := linked(ctx, userID, []string{id})
	if err != nil {
		return domain.RecipeMinified{}, err
	}
	if exists[id] {
		return domain.RecipeMinified{}, conflict
	}

	if err := add(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeMinified{}, conflict
		}
		return domain.RecipeMinified{}, err
	}

	return ToRecipeMinified(recipe), nil
}

func (s *recipeService) removeLink(
	ctx context.Context,
	id, userID string,
	remove func(ctx context.Context, userID, recipeID string) error,
	notFound error,
) error {
	if _, err := s.getRecipe(ctx, id); err != nil {
		return err
	}

	if err := remove(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return err
	}
	return nil
}

func (s *recipeService) getRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) uploadImage(ctx context.Context, image []byte) (string, error) {
	objectKey, err := s.s3.UploadFile(ctx, uuid.NewString(), image, imageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileType) || errors.Is(err, storage.ErrEmptyFile) {
			return "", domain.NewFieldError("image", domain.MessageInvalidImage)
		}
		return "", err
	}
	return objectKey, nil
}

func (s *recipeService) deleteImage(ctx context.Context, objectKey string) {
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to delete recipe image", zap.String("object_key", objectKey), zap.Error(err))
	}
}

func (s *recipeService) toRecipeResponses(ctx context.Context, recipes []*entities.Recipe, userID string) ([]domain.Recipe, error) {
	res := make([]domain.Recipe, 0, len(recipes))
	if len(recipes) == 0 {
		return res, nil
	}

	recipeIDs := make([]string, 0, len(recipes))
	authorIDs := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID.String())
		authorIDs = append(authorIDs, recipe.AuthorID.String())
	}

	favorited := map[string]bool{}
	inCart := map[string]bool{}
	subscribed := map[string]bool{}
	if userID != "" {
		var err error
		if favorited, err = s.recipeRepository.GetFavoritedIDs(ctx, userID, recipeIDs); err != nil {
			return nil, err
		}
		if inCart, err = s.recipeRepository.GetInCartIDs(ctx, userID, recipeIDs); err != nil {
			return nil, err
		}
		if subscribed, err = s.subscriptions.GetSubscribedAuthorIDs(ctx, userID, authorIDs); err != nil {
			return nil, err
		}
	}

	for _, recipe := range recipes {
		id := recipe.ID.String()
		res = append(res, toRecipeResponse(recipe, favorited[id], inCart[id], subscribed[recipe.AuthorID.String()]))
	}
	return res, nil
}

func toRecipeResponse(recipe *entities.Recipe, isFavorited, isInShoppingCart, isSubscribed bool) domain.Recipe {
	res := domain.Recipe{
		ID:               recipe.ID.String(),
		Tags:             tag.ToTagResponses(recipe.Tags),
		Ingredients:      make([]domain.RecipeIngredient, 0, len(recipe.Ingredients)),
		Name:             recipe.Name,
		Image:            recipe.ImageURL,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInShoppingCart,
	}

	if recipe.Author != nil {
		res.Author = user.ToUserResponse(recipe.Author, isSubscribed)
	} else {
		res.Author = domain.User{ID: recipe.AuthorID.String()}
	}

	for _, row := range recipe.Ingredients {
		item := domain.RecipeIngredient{ID: row.IngredientID.String(), Amount: row.Amount}
		if row.Ingredient != nil {
			item.Name = row.Ingredient.Name
			item.MeasurementUnit = row.Ingredient.MeasurementUnit
		}
		res.Ingredients = append(res.Ingredients, item)
	}
	sort.SliceStable(res.Ingredients, func(i, j int) bool {
		return res.Ingredients[i].Name < res.Ingredients[j].Name
	})

	return res
}

func ToRecipeMinified(recipe *entities.Recipe) domain.RecipeMinified {
	return domain.RecipeMinified{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}
}

// translateWriteError turns a unique violation that slipped past validation
// into a field error.
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewFieldError("name", domain.MessageRecipeNameTaken)
	}
	return err
}
