package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ytgate/ytgate/internal/services/search"
	"github.com/ytgate/ytgate/internal/utils"
)

const defaultSearchLimit = 10

type SearchHandler struct {
	provider search.Provider
}

func NewSearchHandler(provider search.Provider) *SearchHandler {
	return &SearchHandler{provider: provider}
}

// Search godoc
// @Summary Search videos by keyword
// @Description Run one keyword query and return compact summaries in relevance order
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum number of results" default(10)
// @Success 200 {array} models.SearchResultItem
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("q")
	if query == "" {
		errorResponse(c, utils.NewMissingParameterError("No search query provided"))
		return
	}

	limit := defaultSearchLimit
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			errorResponse(c, utils.NewInvalidParameterError("limit", rawLimit))
			return
		}
		limit = parsed
	}

	results, err := h.provider.Search(ctx, query, int64(limit))
	if err != nil {
		utils.LogError(ctx, "Search failed", err, utils.Fields{
			"operation": "search",
			"query":     query,
			"limit":     limit,
		})
		errorResponse(c, utils.NewProviderError(err))
		return
	}

	c.JSON(http.StatusOK, results)
}
