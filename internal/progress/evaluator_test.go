package progress

import (
	"strings"
	"testing"
	"time"

	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
)

func findBadge(t *testing.T, badges []BadgeProgress, key string) BadgeProgress {
	t.Helper()
	for _, b := range badges {
		if b.Key == key {
			return b
		}
	}
	t.Fatalf("badge %q not in evaluation result", key)
	return BadgeProgress{}
}

func TestEvaluateEmptyList(t *testing.T) {
	badges := Evaluate(Catalog(), nil, testClock)
	if len(badges) != len(Catalog()) {
		t.Fatalf("got %d badges, want %d", len(badges), len(Catalog()))
	}
	for _, b := range badges {
		if b.Progress != 0 {
			t.Errorf("%s: progress = %d, want 0", b.Key, b.Progress)
		}
		if b.Status != StatusLocked {
			t.Errorf("%s: status = %s, want locked", b.Key, b.Status)
		}
		if b.EarnedAt != nil {
			t.Errorf("%s: earnedAt = %v, want nil", b.Key, b.EarnedAt)
		}
	}
}

func TestFirstWaveEarnedBySingleSubmission(t *testing.T) {
	s := sub(testClock.Add(-2*time.Hour), 1)
	badges := Evaluate(Catalog(), []model.Submission{s}, testClock)

	fw := findBadge(t, badges, "first_wave")
	if fw.Progress != 1 || fw.Threshold != 1 {
		t.Errorf("progress/threshold = %d/%d, want 1/1", fw.Progress, fw.Threshold)
	}
	if fw.Status != StatusEarned {
		t.Errorf("status = %s, want earned", fw.Status)
	}
	if fw.EarnedAt == nil || !fw.EarnedAt.Equal(s.CreatedAt) {
		t.Errorf("earnedAt = %v, want the submission's createdAt %v", fw.EarnedAt, s.CreatedAt)
	}
}

func TestLocalHeroBadgeEarned(t *testing.T) {
	subs := make([]model.Submission, 0, 10)
	for i := 0; i < 10; i++ {
		subs = append(subs, geoSub(testClock.AddDate(0, 0, -i), 60.39+float64(i)*0.0005, 5.32))
	}

	lh := findBadge(t, Evaluate(Catalog(), subs, testClock), "local_hero")
	if lh.Status != StatusEarned {
		t.Fatalf("status = %s, want earned", lh.Status)
	}
	// Threshold-style badge: earned at the most recent submission
	latest := sortByCreatedAt(subs)[len(subs)-1].CreatedAt
	if lh.EarnedAt == nil || !lh.EarnedAt.Equal(latest) {
		t.Errorf("earnedAt = %v, want latest submission %v", lh.EarnedAt, latest)
	}
}

func TestProgressClampedToThreshold(t *testing.T) {
	subs := make([]model.Submission, 0, 12)
	for i := 0; i < 12; i++ {
		subs = append(subs, sub(testClock.AddDate(0, 0, -i), 1))
	}

	for _, b := range Evaluate(Catalog(), subs, testClock) {
		if b.Progress < 0 || b.Progress > b.Threshold {
			t.Errorf("%s: progress %d outside [0, %d]", b.Key, b.Progress, b.Threshold)
		}
	}
}

func TestProgressMonotonicUnderNewSubmission(t *testing.T) {
	subs := make([]model.Submission, 0, 8)
	for i := 0; i < 7; i++ {
		subs = append(subs, geoSub(testClock.AddDate(0, 0, -i), 60.39, 5.32+float64(i)*0.01))
	}

	before := Evaluate(Catalog(), subs, testClock)
	withMore := append(append([]model.Submission{}, subs...), geoSub(testClock, 60.39, 5.32))
	after := Evaluate(Catalog(), withMore, testClock)

	for i := range before {
		if after[i].Progress < before[i].Progress {
			t.Errorf("%s: progress decreased from %d to %d after adding a submission",
				before[i].Key, before[i].Progress, after[i].Progress)
		}
	}
}

func TestEarnedImpliesFullProgress(t *testing.T) {
	subs := make([]model.Submission, 0, 30)
	for i := 0; i < 30; i++ {
		s := geoSub(testClock.AddDate(0, 0, -i), 60.39, 5.32)
		s.WindDir = ns("N")
		subs = append(subs, s)
	}

	for _, b := range Evaluate(Catalog(), subs, testClock) {
		if b.Status == StatusEarned {
			if b.Progress != b.Threshold {
				t.Errorf("%s: earned with progress %d of %d", b.Key, b.Progress, b.Threshold)
			}
			if b.EarnedAt == nil {
				t.Errorf("%s: earned without earnedAt", b.Key)
			}
		}
	}
}

func TestStreakBadgeEarnedAtIsEvaluationTime(t *testing.T) {
	subs := make([]model.Submission, 0, 7)
	for i := 0; i < 7; i++ {
		subs = append(subs, sub(testClock.AddDate(0, 0, -i), 1))
	}

	ws := findBadge(t, Evaluate(Catalog(), subs, testClock), "week_streak")
	if ws.Status != StatusEarned {
		t.Fatalf("status = %s, want earned for a 7-day run", ws.Status)
	}
	// Streak badges re-derive their earn moment on every evaluation
	if ws.EarnedAt == nil || !ws.EarnedAt.Equal(testClock) {
		t.Errorf("earnedAt = %v, want the evaluation clock %v", ws.EarnedAt, testClock)
	}
}

func TestWinterObserverEarnedAtTenthWinterSubmission(t *testing.T) {
	subs := make([]model.Submission, 0, 14)
	var tenthWinter time.Time
	for i := 0; i < 12; i++ {
		created := time.Date(2023, time.December, 1+i, 10, 0, 0, 0, time.UTC)
		subs = append(subs, sub(created, 1))
		if i == 9 {
			tenthWinter = created
		}
	}
	// Interleave off-season noise that must not shift the earn moment
	subs = append(subs,
		sub(time.Date(2023, time.May, 5, 10, 0, 0, 0, time.UTC), 1),
		sub(time.Date(2023, time.October, 5, 10, 0, 0, 0, time.UTC), 1),
	)

	wo := findBadge(t, Evaluate(Catalog(), subs, testClock), "winter_observer")
	if wo.Status != StatusEarned {
		t.Fatalf("status = %s, want earned", wo.Status)
	}
	if wo.EarnedAt == nil || !wo.EarnedAt.Equal(tenthWinter) {
		t.Errorf("earnedAt = %v, want the 10th winter submission %v", wo.EarnedAt, tenthWinter)
	}
}

func TestUnwiredGeographyBadgesStayAtZero(t *testing.T) {
	subs := make([]model.Submission, 0, 50)
	for i := 0; i < 50; i++ {
		subs = append(subs, geoSub(testClock.AddDate(0, 0, -i), 58+float64(i)*0.1, 5+float64(i)*0.1))
	}

	badges := Evaluate(Catalog(), subs, testClock)
	for _, key := range []string{"regional_explorer", "national_observer"} {
		b := findBadge(t, badges, key)
		if b.Progress != 0 || b.Status != StatusLocked {
			t.Errorf("%s: progress=%d status=%s, want stubbed zero/locked", key, b.Progress, b.Status)
		}
	}
}

func TestZeroThresholdBadgeIsAlwaysLocked(t *testing.T) {
	defs := []BadgeDefinition{
		{Key: "first_wave", Title: "x", Tier: TierBronze, Category: CategorySubmissions, Threshold: 0},
	}
	badges := Evaluate(defs, []model.Submission{sub(testClock, 1)}, testClock)
	if badges[0].Status != StatusLocked || badges[0].Progress != 0 {
		t.Errorf("zero-threshold badge: progress=%d status=%s, want 0/locked", badges[0].Progress, badges[0].Status)
	}
}

func TestUnknownBadgeKeyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for a badge key with no wired metric")
		}
		if !strings.Contains(r.(string), "no metric wired") {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()

	defs := []BadgeDefinition{
		{Key: "made_up_badge", Title: "x", Tier: TierBronze, Category: CategorySubmissions, Threshold: 5},
	}
	Evaluate(defs, []model.Submission{sub(testClock, 1)}, testClock)
}

func TestMergePrecedence(t *testing.T) {
	computed := BadgeProgress{
		Key: "dedicated_observer", Title: "Dedikert observatør", Tier: TierSilver,
		Category: CategorySubmissions, Progress: 3, Threshold: 10, Status: StatusActive,
	}

	earned := testClock.AddDate(0, -1, 0)
	merged := Merge(computed, StoredProgress{Progress: 10, EarnedAt: &earned})

	if merged.Progress != 10 {
		t.Errorf("progress = %d, want stored value 10", merged.Progress)
	}
	if merged.EarnedAt == nil || !merged.EarnedAt.Equal(earned) {
		t.Errorf("earnedAt = %v, want stored %v", merged.EarnedAt, earned)
	}
	if merged.Status != StatusEarned {
		t.Errorf("status = %s, want earned", merged.Status)
	}
	if merged.Title != computed.Title || merged.Tier != computed.Tier {
		t.Error("catalog title/tier must survive the merge")
	}
}

func TestMergeClampsStoredProgress(t *testing.T) {
	computed := BadgeProgress{Key: "x", Threshold: 10, Status: StatusLocked}

	if got := Merge(computed, StoredProgress{Progress: 99}).Progress; got != 10 {
		t.Errorf("progress = %d, want clamp to threshold 10", got)
	}
	if got := Merge(computed, StoredProgress{Progress: -4}).Progress; got != 0 {
		t.Errorf("progress = %d, want clamp to 0", got)
	}
}

func TestEvaluateWithStoredOverlaysOnlyKnownKeys(t *testing.T) {
	s := sub(testClock, 1)
	earned := testClock.AddDate(0, 0, -5)
	stored := map[string]StoredProgress{
		"active_observer": {Progress: 5, EarnedAt: &earned},
	}

	badges := EvaluateWithStored(Catalog(), []model.Submission{s}, stored, testClock)

	ao := findBadge(t, badges, "active_observer")
	if ao.Status != StatusEarned || ao.EarnedAt == nil || !ao.EarnedAt.Equal(earned) {
		t.Errorf("stored overlay not applied: %+v", ao)
	}

	// Untouched badges keep their computed state
	fw := findBadge(t, badges, "first_wave")
	if fw.Status != StatusEarned || fw.EarnedAt == nil || !fw.EarnedAt.Equal(s.CreatedAt) {
		t.Errorf("computed badge disturbed by overlay: %+v", fw)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	subs := []model.Submission{
		geoSub(testClock.AddDate(0, 0, -2), 60.39, 5.32),
		sub(testClock, 2),
	}

	first := Evaluate(Catalog(), subs, testClock)
	second := Evaluate(Catalog(), subs, testClock)
	if len(first) != len(second) {
		t.Fatal("evaluation length changed between runs")
	}
	for i := range first {
		a, b := first[i], second[i]
		sameEarned := (a.EarnedAt == nil && b.EarnedAt == nil) ||
			(a.EarnedAt != nil && b.EarnedAt != nil && a.EarnedAt.Equal(*b.EarnedAt))
		if a.Key != b.Key || a.Progress != b.Progress || a.Status != b.Status || !sameEarned {
			t.Errorf("%s: evaluation not idempotent: %+v vs %+v", a.Key, a, b)
		}
	}
}
