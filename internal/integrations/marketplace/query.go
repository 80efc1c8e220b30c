package marketplace

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// pageQuery нормализует параметры пагинации
func pageQuery(page, limit int) url.Values {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func bookingsQuery(filter domain.BookingsFilter) url.Values {
	q := pageQuery(filter.Page, filter.Limit)
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}
	return q
}

func listingsQuery(filter domain.ListingsFilter) url.Values {
	q := pageQuery(filter.Page, filter.Limit)
	if filter.Type != nil {
		q.Set("type", string(*filter.Type))
	}
	if filter.City != "" {
		q.Set("city", filter.City)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	return q
}

func segment(id string) string {
	return "/" + url.PathEscape(id)
}
