package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/sosodev/duration"
	"google.golang.org/api/youtube/v3"

	"github.com/ytgate/ytgate/internal/models"
	"github.com/ytgate/ytgate/internal/services/resolver"
)

// Search runs one keyword query against the Data API. A search.list call
// yields the relevance-ordered hits; a follow-up videos.list call fills in
// duration and view counts, which search.list does not carry.
func (c *Client) Search(ctx context.Context, query string, limit int64) ([]models.SearchResultItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty search query")
	}
	if limit < 1 {
		return nil, fmt.Errorf("limit must be >= 1, got %d", limit)
	}
	if limit > c.maxLimit {
		limit = c.maxLimit
	}

	service, err := c.getService(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	searchResp, err := service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return []models.SearchResultItem{}, nil
	}

	videosResp, err := service.Videos.List([]string{"contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	details := make(map[string]*youtube.Video, len(videosResp.Items))
	for _, video := range videosResp.Items {
		details[video.Id] = video
	}

	return projectResults(searchResp.Items, details, limit), nil
}

// projectResults maps API hits into compact summary records, preserving
// the search order and truncating to limit.
func projectResults(items []*youtube.SearchResult, details map[string]*youtube.Video, limit int64) []models.SearchResultItem {
	results := make([]models.SearchResultItem, 0, len(items))
	for _, item := range items {
		if int64(len(results)) >= limit {
			break
		}
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}

		result := models.SearchResultItem{
			Title:        item.Snippet.Title,
			URL:          resolver.WatchURL(item.Id.VideoId),
			ThumbnailURL: bestThumbnail(item.Snippet.Thumbnails),
			Author:       item.Snippet.ChannelTitle,
		}
		if video, ok := details[item.Id.VideoId]; ok {
			if video.ContentDetails != nil {
				result.Duration = durationSeconds(video.ContentDetails.Duration)
			}
			if video.Statistics != nil {
				result.Views = video.Statistics.ViewCount
			}
		}
		results = append(results, result)
	}
	return results
}

func bestThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{thumbnails.High, thumbnails.Medium, thumbnails.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

// durationSeconds parses the API's ISO 8601 duration (e.g. PT4M13S).
func durationSeconds(iso string) int {
	if iso == "" {
		return 0
	}
	parsed, err := duration.Parse(iso)
	if err != nil {
		return 0
	}
	return int(parsed.ToTimeDuration().Seconds())
}
