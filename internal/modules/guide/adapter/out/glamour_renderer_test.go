package out_test

import (
	"strings"
	"testing"

	guideout "chestdef/internal/modules/guide/adapter/out"
)

func TestGlamourRendererKeepsText(t *testing.T) {
	t.Parallel()
	r := guideout.NewGlamourRenderer("notty")
	got, err := r.Render("# Pillars\n\n1. **Protein:** eggs\n", 40)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Pillars", "Protein", "eggs"} {
		if !strings.Contains(got, want) {
			t.Fatalf("rendered output lost %q:\n%s", want, got)
		}
	}
	if _, err := r.Render("again", 40); err != nil {
		t.Fatalf("cached renderer: %v", err)
	}
}
