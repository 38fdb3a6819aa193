package store

import (
	"testing"

	"flarecast/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCacheInsightRoundTrip(t *testing.T) {
	s := newTestStore(t)

	record := core.InsightRecord{
		Kind:          "weekly",
		PayloadHash:   PayloadHash(`{"weekly_summary": "A steady week."}`),
		ReferenceDate: "2025-06-04",
		Content:       "A steady week.",
		DaysJSON:      `[{"label":"Thu","detail":"low flare risk"}]`,
	}
	if err := s.CacheInsight(record); err != nil {
		t.Fatalf("failed to cache insight: %v", err)
	}

	got, err := s.GetCachedInsight("weekly", record.PayloadHash, "2025-06-04")
	if err != nil {
		t.Fatalf("failed to get insight: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cache hit")
	}
	if got.Content != record.Content || got.DaysJSON != record.DaysJSON {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.ID == "" {
		t.Error("cached record should have an assigned ID")
	}
}

func TestGetCachedInsightMiss(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetCachedInsight("daily", PayloadHash("nope"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected a cache miss, got %+v", got)
	}
}

func TestClearCacheAndStats(t *testing.T) {
	s := newTestStore(t)

	if err := s.CacheInsight(core.InsightRecord{Kind: "daily", PayloadHash: "h", Content: "text"}); err != nil {
		t.Fatalf("failed to cache: %v", err)
	}

	stats, err := s.GetCacheStats()
	if err != nil {
		t.Fatalf("failed to get stats: %v", err)
	}
	if stats.InsightCount != 1 {
		t.Errorf("expected 1 insight, got %d", stats.InsightCount)
	}

	if err := s.ClearCache(); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}
	stats, err = s.GetCacheStats()
	if err != nil {
		t.Fatalf("failed to get stats after clear: %v", err)
	}
	if stats.InsightCount != 0 {
		t.Errorf("expected empty cache, got %d", stats.InsightCount)
	}
}

func TestPayloadHashDeterministic(t *testing.T) {
	if PayloadHash("abc") != PayloadHash("abc") {
		t.Error("hash must be deterministic")
	}
	if PayloadHash("abc") == PayloadHash("abd") {
		t.Error("different payloads must not collide trivially")
	}
}
