package progress

import (
	"testing"
)

func TestCatalogShape(t *testing.T) {
	defs := Catalog()
	if len(defs) != 20 {
		t.Fatalf("catalog has %d badges, want 20", len(defs))
	}

	seen := map[string]bool{}
	perCategory := map[Category]int{}
	for _, d := range defs {
		if d.Key == "" || d.Title == "" || d.Description == "" {
			t.Errorf("%q: incomplete definition", d.Key)
		}
		if seen[d.Key] {
			t.Errorf("duplicate badge key %q", d.Key)
		}
		seen[d.Key] = true

		if d.Threshold <= 0 {
			t.Errorf("%s: threshold %d must be positive", d.Key, d.Threshold)
		}
		if TierXP(d.Tier) == 0 {
			t.Errorf("%s: tier %q has no XP value", d.Key, d.Tier)
		}
		perCategory[d.Category]++
	}

	for _, c := range []Category{CategorySubmissions, CategoryGeography, CategoryStreaks, CategoryConditions} {
		if perCategory[c] == 0 {
			t.Errorf("category %q has no badges", c)
		}
	}
}

// Every catalog key must be wired in the evaluator's metric table. A
// typo here is a programming error and should blow up in tests, not at
// request time.
func TestEveryCatalogKeyHasAMetric(t *testing.T) {
	for _, d := range Catalog() {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("%s: %v", d.Key, r)
				}
			}()
			metricValue(d.Key, Metrics{})
		}()
	}
}

func TestCatalogReturnsACopy(t *testing.T) {
	first := Catalog()
	first[0].Threshold = 999
	if Catalog()[0].Threshold == 999 {
		t.Error("mutating the returned slice must not change the catalog")
	}
}

func TestSubmissionMilestoneLadder(t *testing.T) {
	want := map[string]int{
		"first_wave":           1,
		"active_observer":      5,
		"dedicated_observer":   10,
		"experienced_observer": 25,
		"master_observer":      50,
		"elite_observer":       100,
		"legendary_observer":   250,
	}
	for _, d := range Catalog() {
		if threshold, ok := want[d.Key]; ok && d.Threshold != threshold {
			t.Errorf("%s: threshold = %d, want %d", d.Key, d.Threshold, threshold)
		}
	}
}
