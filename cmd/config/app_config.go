package config

import (
	"context"
	"errors"
	"fmt"

	"foodgram/internal/api/handlers"
	"foodgram/internal/api/presenters"
	"foodgram/internal/api/routes"
	"foodgram/internal/middleware"
	"foodgram/internal/utils"
	"foodgram/internal/utils/cache"
	"foodgram/internal/utils/mailing"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/ingredient"
	"foodgram/pkg/jwt"
	"foodgram/pkg/recipe"
	"foodgram/pkg/subscription"
	"foodgram/pkg/tag"
	"foodgram/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const MessageTooManyRequests = "too many requests"

func NewApp(ctx context.Context, cfg *utils.Config, db *gorm.DB, redisClient *redis.Client) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "foodgram",
		ErrorHandler: ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// request id, access log and recovery come before the limiter so rejected
	// requests are still logged
	app.Use(middlewares.RequestLogger())
	app.Use(middlewares.RecoverMiddleware())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, MessageTooManyRequests, nil)
		},
	}))

	// utils
	s3, err := storage.NewAwsS3(ctx, storage.S3Config{
		Bucket:    cfg.AWSS3Bucket,
		Region:    cfg.AWSS3Region,
		Endpoint:  cfg.AWSS3Endpoint,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 storage: %w", err)
	}
	mailer, err := mailing.NewMailer(mailing.LoadMailConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("init mailer: %w", err)
	}
	blacklist := cache.NewTokenBlacklist(redisClient)

	// Repository
	userRepository := user.NewUserRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	tagRepository := tag.NewTagRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, blacklist)
	userService := user.NewUserService(userRepository, subscriptionRepository, jwtService, mailer, cfg.AppURL)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, userRepository)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		ingredientRepository,
		tagRepository,
		subscriptionRepository,
		s3,
	)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	tagService := tag.NewTagService(tagRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, cfg.PageSize)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, cfg.PageSize)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator, cfg.PageSize)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	tagHandler := handlers.NewTagHandler(tagService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		SubscriptionHandler: subscriptionHandler,
		RecipeHandler:       recipeHandler,
		IngredientHandler:   ingredientHandler,
		TagHandler:          tagHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// ErrorHandler renders errors that escaped the handlers, such as unknown
// routes or a panic, in the regular response envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := fiber.ErrInternalServerError.Message

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	return presenters.ErrorResponse(c, status, message, nil)
}
