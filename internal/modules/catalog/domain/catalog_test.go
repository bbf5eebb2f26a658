package domain_test

import (
	"testing"

	"chestdef/internal/modules/catalog/domain"
)

func TestTranslationsFallBackToKey(t *testing.T) {
	t.Parallel()
	tr := domain.Translations{
		"startBtn": {"pt": "ACESSAR MÉTODO", "en": "ACCESS METHOD"},
		"ptOnly":   {"pt": "Só português"},
	}
	if got := tr.T("startBtn", "en"); got != "ACCESS METHOD" {
		t.Fatalf("unexpected en value %q", got)
	}
	if got := tr.T("missingKey", "pt"); got != "missingKey" {
		t.Fatalf("unknown key should render raw, got %q", got)
	}
	if got := tr.T("ptOnly", "en"); got != "ptOnly" {
		t.Fatalf("missing locale should render raw key, got %q", got)
	}
}

func TestTextAndStepsFallBackToDefaultLocale(t *testing.T) {
	t.Parallel()
	ex := domain.Exercise{
		Name:  domain.Text{"pt": "Grupado"},
		Steps: map[string][]string{"pt": {"Deite-se."}},
	}
	if ex.Name.In("en") != "Grupado" {
		t.Fatalf("name should fall back to pt")
	}
	if steps := ex.StepsIn("en"); len(steps) != 1 {
		t.Fatalf("steps should fall back to pt, got %v", steps)
	}
}
