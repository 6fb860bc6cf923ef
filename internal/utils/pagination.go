package utils

import (
	"net/url"
	"strconv"

	"foodgram/domain"
)

// ParsePagination reads the page and limit query values. A missing page means
// the first one; a malformed page is rejected, a malformed limit falls back to
// the default.
func ParsePagination(page, limit string, defaultLimit int) (domain.Pagination, error) {
	if defaultLimit < 1 {
		defaultLimit = domain.DefaultPageSize
	}
	p := domain.Pagination{Page: 1, Limit: defaultLimit}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return p, domain.ErrInvalidPage
		}
		p.Page = n
	}

	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = n
	}
	return p, nil
}

// NewPage wraps one page of results with the total count and links to the
// neighbouring pages built from requestURL.
func NewPage[T any](requestURL string, p domain.Pagination, count int64, results []T) (domain.Page[T], error) {
	if p.Page > 1 && int64(p.Offset()) >= count {
		return domain.Page[T]{}, domain.ErrInvalidPage
	}
	if results == nil {
		results = []T{}
	}

	page := domain.Page[T]{Count: count, Results: results}
	if int64(p.Page*p.Limit) < count {
		page.Next = pageURL(requestURL, p.Page+1)
	}
	if p.Page > 1 {
		page.Previous = pageURL(requestURL, p.Page-1)
	}
	return page, nil
}

func pageURL(requestURL string, page int) *string {
	u, err := url.Parse(requestURL)
	if err != nil {
		return nil
	}

	q := u.Query()
	if page == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()

	link := u.String()
	return &link
}
