package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"aihub/internal/model"
)

func TestDecodeComparison(t *testing.T) {
	input := `---
title: Candy AI vs Replika
modelA: candy-ai
modelB: replika
verdict: Candy for flirting, Replika for support
winner: tie
publishedAt: 2025-11-20
---

## Intro
Body text.
`
	got, err := DecodeComparison([]byte(input), "candy-vs-replika")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Comparison{
		Slug:    "candy-vs-replika",
		Title:   "Candy AI vs Replika",
		ModelA:  "candy-ai",
		ModelB:  "replika",
		Verdict: "Candy for flirting, Replika for support",
		Winner:  model.WinnerTie,
		Body:    "## Intro\nBody text.\n",
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(model.Comparison{}, "PublishedAt")); diff != "" {
		t.Errorf("DecodeComparison() mismatch (-want +got):\n%s", diff)
	}
	if got.PublishedAt == nil || got.PublishedAt.Format(dateLayout) != "2025-11-20" {
		t.Errorf("PublishedAt = %v, want 2025-11-20", got.PublishedAt)
	}
}

func TestDecodeComparisonViolations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "missing everything",
			input: "seo: {}\n",
			want:  []string{"title", "modelA", "modelB", "verdict"},
		},
		{
			name:  "same model twice and bad winner",
			input: "title: t\nmodelA: a\nmodelB: a\nverdict: v\nwinner: both\n",
			want:  []string{"modelB", "winner"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeComparison([]byte(tt.input), "cmp")
			if diff := cmp.Diff(tt.want, problemPaths(t, err)); diff != "" {
				t.Errorf("problem paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadComparisons(t *testing.T) {
	services := []model.Service{{Slug: "candy-ai"}, {Slug: "replika"}}

	t.Run("valid", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			"candy-vs-replika.md": "---\ntitle: t\nmodelA: candy-ai\nmodelB: replika\nverdict: v\n---\nbody\n",
		})
		got, err := LoadComparisons(dir, services)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Slug != "candy-vs-replika" {
			t.Errorf("LoadComparisons() = %+v", got)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			"ghost.yaml": "title: t\nmodelA: candy-ai\nmodelB: ghost\nverdict: v\n",
		})
		_, err := LoadComparisons(dir, services)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		want := []FieldError{{Source: "ghost.yaml", Path: "modelB", Constraint: `unknown service "ghost"`}}
		if diff := cmp.Diff(want, ve.Problems); diff != "" {
			t.Errorf("problems mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		got, err := LoadComparisons(t.TempDir()+"/nope", services)
		if err != nil || got != nil {
			t.Errorf("LoadComparisons() = %v, %v; want nil, nil", got, err)
		}
	})
}

func TestShippedContentIsValid(t *testing.T) {
	services, err := LoadServices("../../content/services")
	if err != nil {
		t.Fatalf("LoadServices(): %v", err)
	}
	comparisons, err := LoadComparisons("../../content/comparisons", services)
	if err != nil {
		t.Fatalf("LoadComparisons(): %v", err)
	}

	var slugs []string
	for _, s := range services {
		slugs = append(slugs, s.Slug)
	}
	if diff := cmp.Diff([]string{"candy-ai", "telegram-girl", "soulmate"}, slugs); diff != "" {
		t.Errorf("service order mismatch (-want +got):\n%s", diff)
	}
	if len(comparisons) != 1 || comparisons[0].Winner != model.WinnerA {
		t.Errorf("comparisons = %+v", comparisons)
	}
}

func TestDecodeComparisonTimestampAndTypeErrors(t *testing.T) {
	got, err := DecodeComparison([]byte("title: t\nmodelA: a\nmodelB: b\nverdict: v\npublishedAt: \"2025-02-01T09:00:00Z\"\n"), "a-vs-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PublishedAt == nil || got.PublishedAt.Format(dateLayout) != "2025-02-01" {
		t.Errorf("PublishedAt = %v", got.PublishedAt)
	}

	_, err = DecodeComparison([]byte("---\ntitle: [not, a, string]\nmodelA: a\nmodelB: a\nverdict: v\n---\nbody\n"), "a-vs-a")
	paths := problemPaths(t, err)
	if diff := cmp.Diff([]string{"title", "modelB"}, paths); diff != "" {
		t.Errorf("problem paths mismatch (-want +got):\n%s", diff)
	}
}
