package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mintbay/nft-marketplace/internal/store"
)

const (
	defaultListingLimit = 50
	maxListingLimit     = 100
)

// parseListingQuery parses the filter parameters for GET /api/v1/listings
func parseListingQuery(c *gin.Context) (store.ListingFilter, error) {
	filter := store.ListingFilter{
		Seller:        c.Query("seller"),
		TokenContract: c.Query("token_contract"),
		Limit:         defaultListingLimit,
	}

	if raw := c.Query("token_id"); raw != "" {
		tokenID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid token_id: %s", raw)
		}
		filter.TokenID = &tokenID
	}

	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid active: %s", raw)
		}
		filter.ActiveOnly = active
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filter, fmt.Errorf("invalid limit: %s", raw)
		}
		if limit > maxListingLimit {
			limit = maxListingLimit
		}
		filter.Limit = limit
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, fmt.Errorf("invalid offset: %s", raw)
		}
		filter.Offset = offset
	}

	return filter, nil
}
