package collector

import (
	"testing"
	"time"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		period string
		want   time.Time
	}{
		{"1d", now.AddDate(0, 0, -1)},
		{"5d", now.AddDate(0, 0, -5)},
		{"1mo", now.AddDate(0, -1, 0)},
		{"6mo", now.AddDate(0, -6, 0)},
		{"1y", now.AddDate(-1, 0, 0)},
		{"ytd", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := periodStart(now, c.period)
		if err != nil {
			t.Fatalf("periodStart(%q): unexpected error: %v", c.period, err)
		}
		if !got.Equal(c.want) {
			t.Errorf("periodStart(%q) = %v, want %v", c.period, got, c.want)
		}
	}
}

func TestPeriodStart_Unsupported(t *testing.T) {
	if _, err := periodStart(time.Now(), "7q"); err == nil {
		t.Fatal("expected error for unsupported period")
	}
}

func TestMockFetcher_GeneratesBars(t *testing.T) {
	m := &MockFetcher{Price: 5800}
	series, err := m.FetchHistory("SPX500", "1mo", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Empty() {
		t.Fatal("expected generated bars")
	}
	if len(series.Bars) != 22 {
		t.Errorf("expected 22 bars, got %d", len(series.Bars))
	}
}
