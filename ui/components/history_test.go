package components

import (
	"strings"
	"testing"

	"github.com/krishi-officer/krishicli/internal/models"
)

func TestTruncateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "short query unchanged",
			query: "What fertilizer for coconut?",
			want:  "What fertilizer for coconut?",
		},
		{
			name:  "exactly 100 chars unchanged",
			query: strings.Repeat("a", 100),
			want:  strings.Repeat("a", 100),
		},
		{
			name:  "101 chars truncated with ellipsis",
			query: strings.Repeat("a", 101),
			want:  strings.Repeat("a", 100) + "...",
		},
		{
			name:  "multibyte counted as characters not bytes",
			query: strings.Repeat("വ", 100),
			want:  strings.Repeat("വ", 100),
		},
		{
			name:  "long multibyte truncated at 100 runes",
			query: strings.Repeat("വ", 150),
			want:  strings.Repeat("വ", 100) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateQuery(tt.query); got != tt.want {
				t.Errorf("TruncateQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderHistory(t *testing.T) {
	out := RenderHistory([]models.HistoryEntry{
		{ID: "x2", Query: "second", Status: "completed"},
		{ID: "x1", Query: "first", Status: "error"},
	})

	if !strings.Contains(out, "second") || !strings.Contains(out, "first") {
		t.Errorf("output missing entries: %q", out)
	}
	if strings.Index(out, "second") > strings.Index(out, "first") {
		t.Error("entries should render most-recent-first")
	}
	if !strings.Contains(out, "[completed]") || !strings.Contains(out, "[error]") {
		t.Errorf("output missing statuses: %q", out)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	if out := RenderHistory(nil); out != "" {
		t.Errorf("empty history should render nothing, got %q", out)
	}
}
