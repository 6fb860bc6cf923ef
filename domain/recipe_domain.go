package domain

import "fmt"

const (
	MinCookingTime = 1
	MaxCookingTime = 1000
	MinAmount      = 1
	MaxAmount      = 10000

	ShoppingListFileName = "shop_carts.txt"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessAddFavorite     = "recipe added to favorites"
	MessageSuccessRemoveFavorite  = "recipe removed from favorites"
	MessageSuccessAddToCart       = "recipe added to shopping cart"
	MessageSuccessRemoveFromCart  = "recipe removed from shopping cart"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedAddFavorite     = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite  = "failed to remove recipe from favorites"
	MessageFailedAddToCart       = "failed to add recipe to shopping cart"
	MessageFailedRemoveFromCart  = "failed to remove recipe from shopping cart"
	MessageFailedDownloadCart    = "failed to download shopping cart"

	ErrRecipeNotFound        = NotFound("recipe not found")
	ErrFavoriteNotFound      = NotFound("recipe is not in favorites")
	ErrShoppingCartNotFound  = NotFound("recipe is not in shopping cart")
	ErrAlreadyFavorited      = Conflict("recipe is already in favorites")
	ErrAlreadyInShoppingCart = Conflict("recipe is already in shopping cart")

	MessageTagsRequired        = "at least one tag is required"
	MessageTagsUnique          = "tags must be unique"
	MessageIngredientsRequired = "at least one ingredient is required"
	MessageIngredientsUnique   = "ingredients must be unique"
	MessageFieldRequired       = "this field is required"
	MessageRecipeNameTaken     = "recipe with this name already exists"
	MessageInvalidImage        = "upload a valid image"
	MessageInvalidAuthor       = "select a valid author"
	MessageCookingTimeRange    = fmt.Sprintf("cooking time must be between %d and %d", MinCookingTime, MaxCookingTime)
	MessageAmountRange         = fmt.Sprintf("amount must be between %d and %d", MinAmount, MaxAmount)
)

type (
	IngredientAmountRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount"`
	}

	// RecipeRequest is the write representation of a recipe. On update every
	// scalar field is optional; tags and ingredients are always required.
	RecipeRequest struct {
		Ingredients []IngredientAmountRequest `json:"ingredients" validate:"dive"`
		Tags        []string                  `json:"tags" validate:"dive,uuid"`
		Image       string                    `json:"image"`
		Name        string                    `json:"name" validate:"omitempty,max=150"`
		Text        string                    `json:"text"`
		CookingTime *int                      `json:"cooking_time"`
	}

	RecipeFilter struct {
		Tags             []string
		AuthorID         string
		IsFavorited      bool
		IsInShoppingCart bool
		UserID           string
	}

	RecipeMinified struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	RecipeIngredient struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	Recipe struct {
		ID               string             `json:"id"`
		Author           User               `json:"author"`
		Tags             []Tag              `json:"tags"`
		Ingredients      []RecipeIngredient `json:"ingredients"`
		Name             string             `json:"name"`
		Image            string             `json:"image"`
		Text             string             `json:"text"`
		CookingTime      int                `json:"cooking_time"`
		IsFavorited      bool               `json:"is_favorited"`
		IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	}

	ShoppingListItem struct {
		Name            string
		MeasurementUnit string
		TotalAmount     int64
	}
)
