package api

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chain-directory/internal/services"
)

// handleListChains serves the paginated chain collection.
func (s *APIServer) handleListChains(c *fiber.Ctx) error {
	limit := parseLimit(c.Query("limit"))
	offset := parseOffset(c.Query("offset"))

	chains, count, err := s.chainService.ListChains(services.ChainListParams{
		Ordering: parseOrdering(c.Query("ordering")),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		s.logger.Error("Failed to list chains", zap.Error(err))
		return internalError(c)
	}

	return c.JSON(paginatedResponse{
		Count:    count,
		Next:     nextPageURL(c, limit, offset, count),
		Previous: previousPageURL(c, limit, offset),
		Results:  serializeChains(chains, s.cfg.Media.BaseURL),
	})
}

// handleChainByID serves a single chain by its numeric id. Non-numeric ids
// are indistinguishable from missing ones.
func (s *APIServer) handleChainByID(c *fiber.Ctx) error {
	chainID, err := strconv.ParseUint(c.Params("chainID"), 10, 64)
	if err != nil {
		return notFound(c)
	}

	chain, err := s.chainService.GetChainByID(chainID)
	if errors.Is(err, services.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		s.logger.Error("Failed to get chain", zap.Uint64("chain_id", chainID), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(serializeChain(chain, s.cfg.Media.BaseURL))
}

// handleChainByShortName serves a single chain by its short name. The match
// is exact and case sensitive; callers percent-encode special characters.
func (s *APIServer) handleChainByShortName(c *fiber.Ctx) error {
	shortName := c.Params("shortName")
	if decoded, err := url.PathUnescape(shortName); err == nil {
		shortName = decoded
	}

	chain, err := s.chainService.GetChainByShortName(shortName)
	if errors.Is(err, services.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		s.logger.Error("Failed to get chain by short name", zap.String("short_name", shortName), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(serializeChain(chain, s.cfg.Media.BaseURL))
}
