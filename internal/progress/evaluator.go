package progress

import (
	"fmt"
	"time"

	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
)

// Status of a badge, derived on every evaluation
type Status string

const (
	StatusLocked Status = "locked"
	StatusActive Status = "active"
	StatusEarned Status = "earned"
)

// BadgeProgress is the derived state of one badge for one user.
// Never persisted by this package; recomputed per request.
type BadgeProgress struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tier        Tier       `json:"tier"`
	Category    Category   `json:"category"`
	Progress    int        `json:"progress"`
	Threshold   int        `json:"threshold"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
	Status      Status     `json:"status"`
}

// StoredProgress is an optionally persisted progress/earned_at pair for
// one badge key, overlaid on the computed state via Merge.
type StoredProgress struct {
	Progress int
	EarnedAt *time.Time
}

// Evaluate computes the progress of every catalog badge from the user's
// submissions. Input order does not matter; the list is sorted internally.
func Evaluate(defs []BadgeDefinition, subs []model.Submission, now time.Time) []BadgeProgress {
	sorted := sortByCreatedAt(sanitize(subs))
	metrics := Aggregate(sorted, now)

	out := make([]BadgeProgress, 0, len(defs))
	for _, def := range defs {
		out = append(out, evaluateOne(def, metrics, sorted, now))
	}
	return out
}

func evaluateOne(def BadgeDefinition, m Metrics, sorted []model.Submission, now time.Time) BadgeProgress {
	bp := BadgeProgress{
		Key:         def.Key,
		Title:       def.Title,
		Description: def.Description,
		Tier:        def.Tier,
		Category:    def.Category,
		Threshold:   def.Threshold,
		Status:      StatusLocked,
	}

	// A zero threshold can never be met and guards percentage displays
	if def.Threshold <= 0 {
		return bp
	}

	value := metricValue(def.Key, m)
	bp.Progress = min(value, def.Threshold)
	bp.EarnedAt = earnedAt(def, value, sorted, now)

	if bp.EarnedAt != nil {
		bp.Status = StatusEarned
	} else if bp.Progress > 0 {
		bp.Status = StatusActive
	}
	return bp
}

// metricValue is the explicit badge-key → metric table. A key the table
// does not know is a catalog misconfiguration, not a runtime condition.
func metricValue(key string, m Metrics) int {
	switch key {
	case "first_wave", "active_observer", "dedicated_observer", "experienced_observer",
		"master_observer", "elite_observer", "legendary_observer":
		return m.Total
	case "local_hero":
		return m.LocalHero
	case "coast_master":
		return m.UniquePoints
	case "regional_explorer", "national_observer":
		// No county field exists in the submission model yet, so these
		// two badges stay at zero progress. Kept visible on purpose.
		return 0
	case "week_streak", "month_streak":
		return m.Streak
	case "winter_observer":
		return m.WinterCount
	case "summer_observer":
		return m.SummerCount
	case "year_round":
		return m.UniqueMonths
	case "storm_hunter":
		return m.StormCount
	case "calm_guardian":
		return m.CalmCount
	case "wind_meter":
		return m.WindTaggedCount
	case "wave_expert":
		return m.WaveTaggedCount
	default:
		panic(fmt.Sprintf("progress: no metric wired for badge key %q", key))
	}
}

// earnedAt picks the earn timestamp per badge style: the Nth qualifying
// submission for count badges, the latest submission for threshold badges,
// and the evaluation clock for streak badges (streaks are re-derived on
// every request and keep no historical earn moment).
func earnedAt(def BadgeDefinition, value int, sorted []model.Submission, now time.Time) *time.Time {
	switch def.Key {
	case "first_wave", "active_observer", "dedicated_observer", "experienced_observer",
		"master_observer", "elite_observer", "legendary_observer":
		return EarnedAtForCount(sorted, def.Threshold)
	case "winter_observer":
		return EarnedAtForCount(filterSubs(sorted, isWinter), def.Threshold)
	case "summer_observer":
		return EarnedAtForCount(filterSubs(sorted, isSummer), def.Threshold)
	case "storm_hunter":
		return EarnedAtForCount(filterSubs(sorted, func(s model.Submission) bool { return s.Level >= 2 }), def.Threshold)
	case "calm_guardian":
		return EarnedAtForCount(filterSubs(sorted, func(s model.Submission) bool { return s.Level == 1 }), def.Threshold)
	case "wind_meter":
		return EarnedAtForCount(filterSubs(sorted, func(s model.Submission) bool { return s.WindDir.Valid }), def.Threshold)
	case "wave_expert":
		return EarnedAtForCount(filterSubs(sorted, func(s model.Submission) bool { return s.WaveDir.Valid }), def.Threshold)
	case "week_streak", "month_streak":
		if value >= def.Threshold {
			t := now
			return &t
		}
		return nil
	default:
		// Threshold-style badges without a natural Nth item: earned at the
		// most recent submission once the metric meets the threshold.
		if value >= def.Threshold && len(sorted) > 0 {
			t := sorted[len(sorted)-1].CreatedAt
			return &t
		}
		return nil
	}
}

func filterSubs(subs []model.Submission, keep func(model.Submission) bool) []model.Submission {
	out := make([]model.Submission, 0, len(subs))
	for _, s := range subs {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func isWinter(s model.Submission) bool {
	switch s.CreatedAt.Month() {
	case time.December, time.January, time.February:
		return true
	}
	return false
}

func isSummer(s model.Submission) bool {
	switch s.CreatedAt.Month() {
	case time.June, time.July, time.August:
		return true
	}
	return false
}

// Merge overlays a persisted progress row on a computed badge. Stored
// progress and earn time win; title, description and tier always come
// from the catalog entry. Status is re-derived from the merged values.
func Merge(computed BadgeProgress, stored StoredProgress) BadgeProgress {
	merged := computed
	merged.Progress = min(stored.Progress, computed.Threshold)
	if merged.Progress < 0 {
		merged.Progress = 0
	}
	merged.EarnedAt = stored.EarnedAt

	switch {
	case merged.EarnedAt != nil:
		merged.Status = StatusEarned
	case merged.Progress > 0:
		merged.Status = StatusActive
	default:
		merged.Status = StatusLocked
	}
	return merged
}

// EvaluateWithStored evaluates the catalog and overlays any persisted
// user_badges rows, keyed by badge key.
func EvaluateWithStored(defs []BadgeDefinition, subs []model.Submission, stored map[string]StoredProgress, now time.Time) []BadgeProgress {
	computed := Evaluate(defs, subs, now)
	for i, bp := range computed {
		if row, ok := stored[bp.Key]; ok {
			computed[i] = Merge(bp, row)
		}
	}
	return computed
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
