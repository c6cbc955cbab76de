//nolint:testpackage // Testing internal taxonomy requires same package access
package taxonomy

import (
	"strings"
	"testing"

	"github.com/northhealth/triage/internal/domain"
)

func TestDefault_CategoriesMatchDomainOrder(t *testing.T) {
	tax := Default()

	if len(tax.Categories) != len(domain.Categories) {
		t.Fatalf("expected %d categories, got %d", len(domain.Categories), len(tax.Categories))
	}
	for i, want := range domain.Categories {
		if tax.Categories[i].Name != want {
			t.Errorf("category %d: expected %s, got %s", i, want, tax.Categories[i].Name)
		}
		if len(tax.Categories[i].Keywords) == 0 {
			t.Errorf("category %s has no keywords", want)
		}
	}
}

func TestDefault_KeywordsAreNormalized(t *testing.T) {
	tax := Default()

	check := func(kind, kw string) {
		if kw != strings.ToLower(kw) {
			t.Errorf("%s keyword %q is not lowercase", kind, kw)
		}
		if strings.TrimSpace(kw) != kw {
			t.Errorf("%s keyword %q has surrounding whitespace", kind, kw)
		}
	}

	for _, cat := range tax.Categories {
		for _, kw := range cat.Keywords {
			check(cat.Name, kw)
		}
	}
	for _, kw := range tax.Emergency {
		check("emergency", kw)
	}
}

func TestKeywordsFor(t *testing.T) {
	tax := Default()

	keywords := tax.KeywordsFor(domain.CategoryPhysicalSymptoms)
	if len(keywords) == 0 {
		t.Fatal("expected physical symptom keywords")
	}

	if tax.KeywordsFor("unknown") != nil {
		t.Error("expected nil for unknown category")
	}
}

func TestAdviceFor(t *testing.T) {
	tax := Default()

	for _, category := range []string{
		domain.CategoryPhysicalSymptoms,
		domain.CategoryMentalHealth,
		domain.CategoryLifestyle,
	} {
		entry, ok := tax.AdviceFor(category)
		if !ok {
			t.Errorf("expected advice catalog for %s", category)
			continue
		}
		if len(entry.Symptoms) == 0 {
			t.Errorf("advice catalog for %s is empty", category)
		}
		for _, symptom := range entry.Symptoms {
			if len(symptom.Advice) < 3 {
				t.Errorf("symptom %s carries fewer than 3 advice items", symptom.Symptom)
			}
		}
	}

	// Chronic conditions intentionally has no catalog entry.
	if _, ok := tax.AdviceFor(domain.CategoryChronicConditions); ok {
		t.Error("chronic conditions must route to generic advice")
	}
}

func TestDefault_GenericAdvicePresent(t *testing.T) {
	tax := Default()
	if len(tax.Generic) == 0 {
		t.Fatal("generic advice list must not be empty")
	}
}

func TestDefault_EmergencySetIndependent(t *testing.T) {
	tax := Default()

	if len(tax.Emergency) == 0 {
		t.Fatal("emergency set must not be empty")
	}

	// The override set must include the canonical phrases.
	want := map[string]bool{"chest pain": false, "can't breathe": false, "suicidal thoughts": false}
	for _, kw := range tax.Emergency {
		if _, ok := want[kw]; ok {
			want[kw] = true
		}
	}
	for kw, found := range want {
		if !found {
			t.Errorf("emergency set missing %q", kw)
		}
	}
}
