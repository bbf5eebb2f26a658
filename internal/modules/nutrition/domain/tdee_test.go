package domain_test

import (
	"errors"
	"testing"

	"chestdef/internal/modules/nutrition/domain"
	apperrors "chestdef/internal/platform/errors"
)

func TestCalculateReferenceProfile(t *testing.T) {
	t.Parallel()
	res, err := domain.Calculate(domain.Profile{Sex: domain.SexMale, Age: 25, WeightKg: 75, HeightCm: 175, Multiplier: 1.2})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.BMR != 1723.75 || res.TDEE != 2069 || res.Cutting != 1569 {
		t.Fatalf("unexpected energy values %+v", res)
	}
	if res.Macros.ProteinG != 150 || res.Macros.FatG != 60 || res.Macros.CarbsG != 107 {
		t.Fatalf("unexpected macros %+v", res.Macros)
	}
}

func TestCalculateFemaleAndComparison(t *testing.T) {
	t.Parallel()
	p := domain.Profile{Sex: domain.SexFemale, Age: 30, WeightKg: 60, HeightCm: 165, Multiplier: 1.55}
	res, err := domain.Calculate(p)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	// 600 + 1031.25 - 150 - 161
	if res.BMR != 1320.25 || res.TDEE != 2046 {
		t.Fatalf("unexpected values %+v", res)
	}
	levels, err := domain.Compare(p)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(levels) != 5 || levels[0].TDEE != 1584 || levels[4].TDEE != 2508 {
		t.Fatalf("unexpected comparison %+v", levels)
	}
}

func TestValidateRejectsBadProfiles(t *testing.T) {
	t.Parallel()
	bad := []domain.Profile{
		{Sex: "other", Age: 25, WeightKg: 75, HeightCm: 175, Multiplier: 1.2},
		{Sex: domain.SexMale, Age: 0, WeightKg: 75, HeightCm: 175, Multiplier: 1.2},
		{Sex: domain.SexMale, Age: 25, WeightKg: 75, HeightCm: 175},
	}
	for _, p := range bad {
		if _, err := domain.Calculate(p); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", p, err)
		}
	}
}

func TestCompareRejectsBadProfiles(t *testing.T) {
	t.Parallel()
	bad := []domain.Profile{
		{Sex: domain.SexFemale, Age: 30, WeightKg: 0, HeightCm: 165},
		{Sex: domain.SexMale, Age: -1, WeightKg: 75, HeightCm: 175},
		{Sex: "", Age: 25, WeightKg: 75, HeightCm: 175},
	}
	for _, p := range bad {
		if levels, err := domain.Compare(p); !errors.Is(err, apperrors.ErrInvalidInput) || levels != nil {
			t.Fatalf("expected invalid input for %+v, got %v %v", p, levels, err)
		}
	}
}
