package subscription

import (
	"context"
	"errors"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/pkg/logger"
	"foodgram/pkg/recipe"
	"foodgram/pkg/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoRecipesLimit embeds every recipe of an author.
const NoRecipesLimit = -1

type (
	SubscriptionService interface {
		Subscribe(ctx context.Context, userID, authorID string, recipesLimit int) (domain.UserWithRecipes, error)
		Unsubscribe(ctx context.Context, userID, authorID string) error
		GetSubscriptions(ctx context.Context, userID string, page domain.Pagination, recipesLimit int) ([]domain.UserWithRecipes, int64, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, userRepository user.UserRepository) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID, authorID string, recipesLimit int) (domain.UserWithRecipes, error) {
	author, err := s.getAuthor(ctx, authorID)
	if err != nil {
		return domain.UserWithRecipes{}, err
	}

	if userID == author.ID.String() {
		return domain.UserWithRecipes{}, domain.ErrSelfSubscription
	}

	subscribed, err := s.subscriptionRepository.IsSubscribed(ctx, userID, author.ID.String())
	if err != nil {
		return domain.UserWithRecipes{}, err
	}
	if subscribed {
		return domain.UserWithRecipes{}, domain.ErrAlreadySubscribed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserWithRecipes{}, domain.ErrParseUUID
	}

	subscription := &entities.Subscription{
		ID:       uuid.New(),
		UserID:   userUUID,
		AuthorID: author.ID,
	}
	if err := s.subscriptionRepository.CreateSubscription(ctx, subscription); err != nil {
		// lost a race against a concurrent subscribe
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserWithRecipes{}, domain.ErrAlreadySubscribed
		}
		return domain.UserWithRecipes{}, err
	}

	logger.Log(ctx).Info(ctx, "subscribed",
		zap.String("user_id", userID),
		zap.String("author_id", author.ID.String()),
	)

	res, err := s.withRecipes(ctx, []*entities.User{author}, map[string]bool{author.ID.String(): true}, recipesLimit)
	if err != nil {
		return domain.UserWithRecipes{}, err
	}
	return res[0], nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, authorID string) error {
	author, err := s.getAuthor(ctx, authorID)
	if err != nil {
		return err
	}

	if err := s.subscriptionRepository.DeleteSubscription(ctx, userID, author.ID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSubscriptionNotFound
		}
		return err
	}
	return nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, userID string, page domain.Pagination, recipesLimit int) ([]domain.UserWithRecipes, int64, error) {
	authors, count, err := s.subscriptionRepository.GetSubscriptions(ctx, userID, page)
	if err != nil {
		return nil, 0, err
	}

	subscribed := make(map[string]bool, len(authors))
	for _, author := range authors {
		subscribed[author.ID.String()] = true
	}

	res, err := s.withRecipes(ctx, authors, subscribed, recipesLimit)
	if err != nil {
		return nil, 0, err
	}
	return res, count, nil
}

func (s *subscriptionService) getAuthor(ctx context.Context, authorID string) (*entities.User, error) {
	if _, err := uuid.Parse(authorID); err != nil {
		return nil, domain.ErrUserNotFound
	}

	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return author, nil
}

func (s *subscriptionService) withRecipes(ctx context.Context, authors []*entities.User, subscribed map[string]bool, recipesLimit int) ([]domain.UserWithRecipes, error) {
	ids := make([]string, 0, len(authors))
	for _, author := range authors {
		ids = append(ids, author.ID.String())
	}

	counts, err := s.subscriptionRepository.CountAuthorRecipes(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserWithRecipes, 0, len(authors))
	for _, author := range authors {
		recipes, err := s.subscriptionRepository.GetAuthorRecipes(ctx, author.ID.String(), recipesLimit)
		if err != nil {
			return nil, err
		}

		minified := make([]domain.RecipeMinified, 0, len(recipes))
		for _, r := range recipes {
			minified = append(minified, recipe.ToRecipeMinified(r))
		}

		res = append(res, domain.UserWithRecipes{
			User:         user.ToUserResponse(author, subscribed[author.ID.String()]),
			Recipes:      minified,
			RecipesCount: counts[author.ID.String()],
		})
	}
	return res, nil
}
