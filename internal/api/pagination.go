package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/chain-directory/internal/services"
	"github.com/rxtech-lab/chain-directory/internal/utils"
)

// paginatedResponse is the envelope for paginated listings. Next and
// Previous are absolute URLs, null at the respective ends of the
// collection.
type paginatedResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// parseLimit reads a page size. Missing or malformed values fall back to
// the default; oversized values clamp to the maximum.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return services.DefaultPageLimit
	}
	if limit > services.MaxPageLimit {
		return services.MaxPageLimit
	}
	return limit
}

// parseOffset reads a page offset, treating anything malformed or negative
// as the start of the collection.
func parseOffset(raw string) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// parseOrdering splits a comma separated ordering request. Validation of
// the individual fields happens in the query layer.
func parseOrdering(raw string) []string {
	if raw == "" {
		return nil
	}
	var fields []string
	for _, field := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

// nextPageURL returns the link to the following page, or nil when this page
// exhausts the collection.
func nextPageURL(c *fiber.Ctx, limit, offset int, count int64) *string {
	if int64(offset+limit) >= count {
		return nil
	}
	return pageURL(c, limit, offset+limit)
}

// previousPageURL returns the link to the preceding page, or nil on the
// first page.
func previousPageURL(c *fiber.Ctx, limit, offset int) *string {
	if offset <= 0 {
		return nil
	}
	prev := offset - limit
	if prev < 0 {
		prev = 0
	}
	return pageURL(c, limit, prev)
}

// pageURL rebuilds the request URL with adjusted limit and offset, keeping
// every other query parameter. An offset of zero is omitted.
func pageURL(c *fiber.Ctx, limit, offset int) *string {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})

	values.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		values.Set("offset", strconv.Itoa(offset))
	} else {
		values.Del("offset")
	}

	u := utils.BaseURL(c.BaseURL()) + c.Path()
	if encoded := values.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return &u
}
