package handlers

import (
	"strconv"
	"strings"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// parsePagination reads page and limit from the query string.
func parsePagination(c *fiber.Ctx, pageSize int) (domain.Pagination, error) {
	return utils.ParsePagination(c.Query("page"), c.Query("limit"), pageSize)
}

// pageResponse renders one page of results with links relative to the
// current request URL.
func pageResponse[T any](c *fiber.Ctx, p domain.Pagination, count int64, results []T, message, failMessage string) error {
	page, err := utils.NewPage(c.BaseURL()+c.OriginalURL(), p, count, results)
	if err != nil {
		return presenters.DomainErrorResponse(c, failMessage, err)
	}
	return presenters.SuccessResponse(c, page, fiber.StatusOK, message)
}

func validationErrorResponse(c *fiber.Ctx, message string, err error) error {
	return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, utils.ValidationErrors(err))
}

// queryFlag treats 1/true (any case) as set and everything else as unset.
func queryFlag(value string) bool {
	flag, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && flag
}
