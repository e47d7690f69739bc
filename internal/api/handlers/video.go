package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ytgate/ytgate/internal/services/resolver"
	"github.com/ytgate/ytgate/internal/utils"
)

type VideoHandler struct {
	provider resolver.Provider
}

func NewVideoHandler(provider resolver.Provider) *VideoHandler {
	return &VideoHandler{provider: provider}
}

// Info godoc
// @Summary Get video metadata
// @Description Resolve a YouTube URL and return title, statistics and the available progressive streams
// @Tags video
// @Produce json
// @Param url query string true "YouTube video URL"
// @Success 200 {object} models.VideoMetadata
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/video_info [get]
func (h *VideoHandler) Info(c *gin.Context) {
	ctx := c.Request.Context()

	rawURL := c.Query("url")
	if rawURL == "" {
		errorResponse(c, utils.NewMissingParameterError("No URL provided"))
		return
	}

	videoID, err := resolver.ParseVideoURL(rawURL)
	if err != nil {
		utils.LogWarn(ctx, "Unrecognized video URL", utils.Fields{
			"operation": "video_info",
			"url":       rawURL,
		})
		errorResponse(c, utils.NewInvalidURLError(rawURL))
		return
	}

	meta, err := h.provider.GetVideo(ctx, videoID)
	if err != nil {
		utils.LogError(ctx, "Failed to resolve video", err, utils.Fields{
			"operation": "video_info",
			"video_id":  videoID,
		})
		errorResponse(c, utils.NewProviderError(err))
		return
	}

	c.JSON(http.StatusOK, meta)
}
