package api

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chain-directory/internal/cache"
)

// handleListSafeApps serves the safe app listing. Responses are cached for
// the configured TTL keyed by the normalized query string, and replayed
// byte for byte until they expire.
func (s *APIServer) handleListSafeApps(c *fiber.Ctx) error {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	key := cache.RequestKey(values)

	ctx := c.UserContext()
	if body, ok := s.safeAppsCache.Get(ctx, key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}

	apps, err := s.safeAppService.ListSafeApps(parseChainIDFilter(c.Query("chainId")))
	if err != nil {
		s.logger.Error("Failed to list safe apps", zap.Error(err))
		return internalError(c)
	}

	body, err := json.Marshal(serializeSafeApps(apps))
	if err != nil {
		s.logger.Error("Failed to serialize safe apps", zap.Error(err))
		return internalError(c)
	}

	s.safeAppsCache.Set(ctx, key, body, s.cfg.Cache.SafeAppsTTL)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// parseChainIDFilter reads the chainId query parameter. Anything that is
// not a plain decimal number disables the filter instead of erroring, so
// malformed values behave like an unfiltered request.
func parseChainIDFilter(raw string) *uint64 {
	if raw == "" {
		return nil
	}
	chainID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &chainID
}
