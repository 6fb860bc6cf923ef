package handlers

import (
	"strconv"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/internal/middleware"
	"foodgram/pkg/subscription"

	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
		GetSubscriptions(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		pageSize            int
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, pageSize int) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		pageSize:            pageSize,
	}
}

func (h *subscriptionHandler) Subscribe(c *fiber.Ctx) error {
	res, err := h.subscriptionService.Subscribe(
		c.UserContext(),
		middleware.UserID(c),
		c.Params("id"),
		recipesLimit(c),
	)
	if err != nil {
		return presenters.DomainErrorResponse(c, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *subscriptionHandler) Unsubscribe(c *fiber.Ctx) error {
	if err := h.subscriptionService.Unsubscribe(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return presenters.DomainErrorResponse(c, domain.MessageFailedUnsubscribe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessUnsubscribe)
}

func (h *subscriptionHandler) GetSubscriptions(c *fiber.Ctx) error {
	page, err := parsePagination(c, h.pageSize)
	if err != nil {
		return presenters.DomainErrorResponse(c, domain.MessageFailedGetSubscription, err)
	}

	authors, count, err := h.subscriptionService.GetSubscriptions(c.UserContext(), middleware.UserID(c), page, recipesLimit(c))
	if err != nil {
		return presenters.DomainErrorResponse(c, domain.MessageFailedGetSubscription, err)
	}

	return pageResponse(c, page, count, authors, domain.MessageSuccessGetSubscription, domain.MessageFailedGetSubscription)
}

// recipesLimit reads recipes_limit; a missing, malformed or negative value
// embeds every recipe.
func recipesLimit(c *fiber.Ctx) int {
	limit, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || limit < 0 {
		return subscription.NoRecipesLimit
	}
	return limit
}
