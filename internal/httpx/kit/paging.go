package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// PagingParams contains pagination parameters from HTTP request
type PagingParams struct {
	Limit  int
	Offset int
	// Sort key string, "field" or "field:dir"
	Sort string
	// Whether to compute total count
	WithTotal bool
}

func ParsePaging(c *fiber.Ctx) (PagingParams, error) {
	p := PagingParams{Limit: lo.Clamp(c.QueryInt("limit", 20), 1, 100)}
	p.Offset = c.QueryInt("offset", 0)
	if p.Offset < 0 {
		return p, BadRequest("invalid offset", p.Offset)
	}
	p.Sort = c.Query("sort", "")
	p.WithTotal = c.Query("with_total", "false") == "true"
	return p, nil
}

// PageOf computes the response metadata for one fetched page. Fetch limit+1
// rows and pass them here; the extra row signals another page.
func PageOf[T any](items []T, p PagingParams, total *int) ([]T, PageMeta) {
	meta := PageMeta{Limit: p.Limit, Offset: p.Offset, Total: total}
	if len(items) > p.Limit {
		items = items[:p.Limit]
		meta.HasMore = true
		meta.NextOffset = lo.ToPtr(p.Offset + p.Limit)
	}
	meta.Count = len(items)
	return items, meta
}
