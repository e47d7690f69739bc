package search

import (
	"context"
	"testing"

	"google.golang.org/api/youtube/v3"

	"github.com/ytgate/ytgate/internal/config"
)

func searchHit(videoID, title, channel string) *youtube.SearchResult {
	return &youtube.SearchResult{
		Id: &youtube.ResourceId{VideoId: videoID},
		Snippet: &youtube.SearchResultSnippet{
			Title:        title,
			ChannelTitle: channel,
			Thumbnails: &youtube.ThumbnailDetails{
				High: &youtube.Thumbnail{Url: "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"},
			},
		},
	}
}

func TestProjectResultsOrderAndTruncation(t *testing.T) {
	items := []*youtube.SearchResult{
		searchHit("aaa", "first", "ch1"),
		searchHit("bbb", "second", "ch2"),
		searchHit("ccc", "third", "ch3"),
	}
	details := map[string]*youtube.Video{
		"aaa": {
			Id:             "aaa",
			ContentDetails: &youtube.VideoContentDetails{Duration: "PT4M13S"},
			Statistics:     &youtube.VideoStatistics{ViewCount: 1000},
		},
		"bbb": {
			Id:             "bbb",
			ContentDetails: &youtube.VideoContentDetails{Duration: "PT1H2M"},
			Statistics:     &youtube.VideoStatistics{ViewCount: 5},
		},
	}

	results := projectResults(items, details, 2)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Title != "first" || results[1].Title != "second" {
		t.Errorf("provider order not preserved: %q, %q", results[0].Title, results[1].Title)
	}
	if results[0].URL != "https://www.youtube.com/watch?v=aaa" {
		t.Errorf("unexpected watch URL %q", results[0].URL)
	}
	if results[0].Duration != 253 {
		t.Errorf("expected 253s duration, got %d", results[0].Duration)
	}
	if results[1].Duration != 3720 {
		t.Errorf("expected 3720s duration, got %d", results[1].Duration)
	}
	if results[0].Views != 1000 {
		t.Errorf("expected 1000 views, got %d", results[0].Views)
	}
	if results[0].Author != "ch1" {
		t.Errorf("expected author ch1, got %q", results[0].Author)
	}
}

func TestProjectResultsMissingDetails(t *testing.T) {
	items := []*youtube.SearchResult{searchHit("aaa", "first", "ch1")}

	results := projectResults(items, map[string]*youtube.Video{}, 10)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Duration != 0 || results[0].Views != 0 {
		t.Errorf("expected zero duration/views without details, got %d/%d",
			results[0].Duration, results[0].Views)
	}
}

func TestProjectResultsSkipsMalformedHits(t *testing.T) {
	items := []*youtube.SearchResult{
		{Id: nil, Snippet: &youtube.SearchResultSnippet{Title: "no id"}},
		{Id: &youtube.ResourceId{VideoId: ""}, Snippet: &youtube.SearchResultSnippet{Title: "empty id"}},
		searchHit("good", "ok", "ch"),
	}

	results := projectResults(items, nil, 10)

	if len(results) != 1 || results[0].Title != "ok" {
		t.Fatalf("expected only the well-formed hit, got %+v", results)
	}
}

func TestDurationSeconds(t *testing.T) {
	testCases := []struct {
		iso      string
		expected int
	}{
		{"PT4M13S", 253},
		{"PT1H", 3600},
		{"PT0S", 0},
		{"", 0},
		{"bogus", 0},
	}

	for _, tc := range testCases {
		if got := durationSeconds(tc.iso); got != tc.expected {
			t.Errorf("durationSeconds(%q) = %d, want %d", tc.iso, got, tc.expected)
		}
	}
}

func TestBestThumbnail(t *testing.T) {
	if got := bestThumbnail(nil); got != "" {
		t.Errorf("expected empty for nil thumbnails, got %q", got)
	}

	details := &youtube.ThumbnailDetails{
		Default: &youtube.Thumbnail{Url: "default"},
		Medium:  &youtube.Thumbnail{Url: "medium"},
	}
	if got := bestThumbnail(details); got != "medium" {
		t.Errorf("expected medium preferred over default, got %q", got)
	}
}

func TestSearchValidation(t *testing.T) {
	client := NewClient(
		&config.SearchConfig{APIKey: "test-key", MaxLimit: 50},
		&config.ProviderConfig{RequestTimeout: 0},
	)

	if _, err := client.Search(context.Background(), "   ", 10); err == nil {
		t.Error("expected error for blank query")
	}
	if _, err := client.Search(context.Background(), "cats", 0); err == nil {
		t.Error("expected error for zero limit")
	}
}

func TestSearchWithoutAPIKey(t *testing.T) {
	client := NewClient(
		&config.SearchConfig{APIKey: "", MaxLimit: 50},
		&config.ProviderConfig{RequestTimeout: 0},
	)

	if _, err := client.Search(context.Background(), "cats", 10); err == nil {
		t.Error("expected error when no API key is configured")
	}
}
