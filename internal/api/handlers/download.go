package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ytgate/ytgate/internal/services/resolver"
	"github.com/ytgate/ytgate/internal/utils"
)

const downloadContentType = "video/mp4"

// Download godoc
// @Summary Download a video stream
// @Description Stream the selected progressive rendition back as an attachment. Without an itag the highest-capability rendition is served.
// @Tags video
// @Produce video/mp4
// @Param url query string true "YouTube video URL"
// @Param itag query int false "Explicit stream itag"
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/download [get]
func (h *VideoHandler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	rawURL := c.Query("url")
	if rawURL == "" {
		errorResponse(c, utils.NewMissingParameterError("No URL provided"))
		return
	}

	itag := 0
	if rawItag := c.Query("itag"); rawItag != "" {
		parsed, err := strconv.Atoi(rawItag)
		if err != nil || parsed < 1 {
			errorResponse(c, utils.NewInvalidParameterError("itag", rawItag))
			return
		}
		itag = parsed
	}

	videoID, err := resolver.ParseVideoURL(rawURL)
	if err != nil {
		utils.LogWarn(ctx, "Unrecognized video URL", utils.Fields{
			"operation": "download",
			"url":       rawURL,
		})
		errorResponse(c, utils.NewInvalidURLError(rawURL))
		return
	}

	meta, err := h.provider.GetVideo(ctx, videoID)
	if err != nil {
		utils.LogError(ctx, "Failed to resolve video", err, utils.Fields{
			"operation": "download",
			"video_id":  videoID,
		})
		errorResponse(c, utils.NewProviderError(err))
		return
	}

	variant, err := resolver.SelectStream(meta, itag)
	if err != nil {
		utils.LogWarn(ctx, "No matching stream", utils.Fields{
			"operation": "download",
			"video_id":  videoID,
			"itag":      itag,
		})
		errorResponse(c, utils.NewStreamNotFoundError(itag))
		return
	}

	stream, size, err := h.provider.OpenStream(ctx, videoID, variant.Itag)
	if err != nil {
		if errors.Is(err, resolver.ErrNoMatchingStream) {
			errorResponse(c, utils.NewStreamNotFoundError(variant.Itag))
			return
		}
		utils.LogError(ctx, "Failed to open stream", err, utils.Fields{
			"operation": "download",
			"video_id":  videoID,
			"itag":      variant.Itag,
		})
		errorResponse(c, utils.NewProviderError(err))
		return
	}
	defer stream.Close()

	c.Header("Content-Type", downloadContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.mp4\"", sanitizeFilename(meta.Title, videoID)))
	if size > 0 {
		c.Header("Content-Length", strconv.FormatInt(size, 10))
	}

	// From here on the status is committed; a mid-stream failure truncates
	// the body and the client must treat the short read as an incomplete
	// download.
	written, err := io.Copy(c.Writer, stream)
	if err != nil {
		utils.LogError(ctx, "Stream relay aborted", err, utils.Fields{
			"operation":     "download",
			"video_id":      videoID,
			"itag":          variant.Itag,
			"bytes_written": written,
		})
		return
	}

	utils.LogInfo(ctx, "Download completed", utils.Fields{
		"video_id":      videoID,
		"itag":          variant.Itag,
		"bytes_written": written,
	})
}
