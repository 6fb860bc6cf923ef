package routes

import (
	"foodgram/internal/api/handlers"
	"foodgram/internal/middleware"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	SubscriptionHandler handlers.SubscriptionHandler
	RecipeHandler       handlers.RecipeHandler
	IngredientHandler   handlers.IngredientHandler
	TagHandler          handlers.TagHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	api := c.App.Group("/api")

	c.GuestRoute(api)
	c.Auth(api)
	c.User(api)
	c.Recipe(api)
	c.Catalog(api)
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) optionalAuth() fiber.Handler {
	return c.Middleware.OptionalAuthMiddleware(c.JWTService)
}

func (c *Config) GuestRoute(api fiber.Router) {
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth(api fiber.Router) {
	token := api.Group("/auth/token")
	token.Post("/login", c.UserHandler.Login)
	token.Post("/logout", c.auth(), c.UserHandler.Logout)
}

func (c *Config) User(api fiber.Router) {
	user := api.Group("/users")
	// everything but registration and password reset needs a token;
	// static segments go before /:id
	{
		user.Post("/", c.UserHandler.Register)
		user.Get("/", c.auth(), c.UserHandler.GetUsers)
		user.Get("/me", c.auth(), c.UserHandler.Me)
		user.Post("/set_password", c.auth(), c.UserHandler.SetPassword)
		user.Post("/reset_password", c.UserHandler.ResetPassword)
		user.Post("/reset_password_confirm", c.UserHandler.ResetPasswordConfirm)
		user.Get("/subscriptions", c.auth(), c.SubscriptionHandler.GetSubscriptions)
		user.Get("/:id", c.auth(), c.UserHandler.GetUser)
		user.Post("/:id/subscribe", c.auth(), c.SubscriptionHandler.Subscribe)
		user.Delete("/:id/subscribe", c.auth(), c.SubscriptionHandler.Unsubscribe)
	}
}

func (c *Config) Recipe(api fiber.Router) {
	recipes := api.Group("/recipes")
	recipes.Get("/download_shopping_cart", c.auth(), c.RecipeHandler.DownloadShoppingCart)

	recipes.Get("/", c.optionalAuth(), c.RecipeHandler.GetRecipes)
	recipes.Post("/", c.auth(), c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.optionalAuth(), c.RecipeHandler.GetRecipe)
	recipes.Patch("/:id", c.auth(), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.auth(), c.RecipeHandler.DeleteRecipe)

	recipes.Post("/:id/favorite", c.auth(), c.RecipeHandler.AddFavorite)
	recipes.Delete("/:id/favorite", c.auth(), c.RecipeHandler.RemoveFavorite)
	recipes.Post("/:id/shopping_cart", c.auth(), c.RecipeHandler.AddToShoppingCart)
	recipes.Delete("/:id/shopping_cart", c.auth(), c.RecipeHandler.RemoveFromShoppingCart)
}

// Catalog serves the read-only ingredient and tag references.
func (c *Config) Catalog(api fiber.Router) {
	api.Get("/ingredients", c.IngredientHandler.GetIngredients)
	api.Get("/ingredients/:id", c.IngredientHandler.GetIngredient)
	api.Get("/tags", c.TagHandler.GetTags)
	api.Get("/tags/:id", c.TagHandler.GetTag)
}
