// Package progress computes derived badge and XP state from a user's
// observation history. Everything in here is a pure function over the
// submission list handed in by the caller; nothing touches the database.
package progress

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Haavardeide1/Kystobservatorene/internal/logger"
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
)

const (
	// earthRadiusKm for haversine distances
	earthRadiusKm = 6371.0
	// localHeroRadiusKm is the cluster radius for the local_hero badge
	localHeroRadiusKm = 10.0

	dayFormat = "2006-01-02"
)

// Metrics are the per-user aggregates every badge feeds from
type Metrics struct {
	Total           int `json:"total"`
	Streak          int `json:"streak"`
	LocalHero       int `json:"localHero"`
	UniquePoints    int `json:"uniquePoints"`
	WinterCount     int `json:"winterCount"`
	SummerCount     int `json:"summerCount"`
	UniqueMonths    int `json:"uniqueMonths"`
	StormCount      int `json:"stormCount"`
	CalmCount       int `json:"calmCount"`
	WindTaggedCount int `json:"windTaggedCount"`
	WaveTaggedCount int `json:"waveTaggedCount"`
}

// Aggregate computes all metrics from a user's non-deleted submissions.
// Order of the input does not matter. Records with a missing createdAt or
// an out-of-range coordinate are skipped, not fatal: one bad row must not
// cost a user their whole progress view.
func Aggregate(subs []model.Submission, now time.Time) Metrics {
	subs = sanitize(subs)

	var m Metrics
	m.Total = len(subs)
	m.Streak = streak(subs, now)
	m.LocalHero = localHero(subs)
	m.UniquePoints = uniquePoints(subs)

	months := map[time.Month]bool{}
	for _, s := range subs {
		switch s.CreatedAt.Month() {
		case time.December, time.January, time.February:
			m.WinterCount++
		case time.June, time.July, time.August:
			m.SummerCount++
		}
		months[s.CreatedAt.Month()] = true

		if s.Level >= 2 {
			m.StormCount++
		}
		if s.Level == 1 {
			m.CalmCount++
		}
		if s.WindDir.Valid {
			m.WindTaggedCount++
		}
		if s.WaveDir.Valid {
			m.WaveTaggedCount++
		}
	}
	m.UniqueMonths = len(months)

	return m
}

// sanitize drops records the aggregation cannot trust
func sanitize(subs []model.Submission) []model.Submission {
	clean := make([]model.Submission, 0, len(subs))
	for _, s := range subs {
		if s.CreatedAt.IsZero() {
			logger.Warning("skipping submission %s: missing createdAt", s.ID)
			continue
		}
		if s.LatPublic.Valid && math.Abs(s.LatPublic.Float64) > 90 {
			logger.Warning("skipping submission %s: latitude out of range", s.ID)
			continue
		}
		if s.LngPublic.Valid && math.Abs(s.LngPublic.Float64) > 180 {
			logger.Warning("skipping submission %s: longitude out of range", s.ID)
			continue
		}
		clean = append(clean, s)
	}
	return clean
}

// streak is the length of the consecutive-day run ending today or yesterday
func streak(subs []model.Submission, now time.Time) int {
	daySet := map[string]bool{}
	for _, s := range subs {
		daySet[s.CreatedAt.Format(dayFormat)] = true
	}
	if len(daySet) == 0 {
		return 0
	}

	days := make([]string, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	today := now.Format(dayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)
	if days[0] != today && days[0] != yesterday {
		return 0
	}

	count := 1
	for i := 1; i < len(days); i++ {
		prev, err1 := time.Parse(dayFormat, days[i-1])
		cur, err2 := time.Parse(dayFormat, days[i])
		if err1 != nil || err2 != nil {
			break
		}
		if !cur.AddDate(0, 0, 1).Equal(prev) {
			break
		}
		count++
	}
	return count
}

// localHero is the densest 10 km cluster: for every geotagged submission,
// count all geotagged submissions within the radius (itself included) and
// keep the maximum. O(n²) all-pairs, fine for per-user volumes.
func localHero(subs []model.Submission) int {
	type point struct{ lat, lng float64 }
	points := make([]point, 0, len(subs))
	for _, s := range subs {
		if s.LatPublic.Valid && s.LngPublic.Valid {
			points = append(points, point{s.LatPublic.Float64, s.LngPublic.Float64})
		}
	}

	best := 0
	for _, center := range points {
		count := 0
		for _, p := range points {
			if haversineKm(center.lat, center.lng, p.lat, p.lng) <= localHeroRadiusKm {
				count++
			}
		}
		if count > best {
			best = count
		}
	}
	return best
}

// uniquePoints deduplicates coordinates on a ~1.1 km grid (2 decimals)
func uniquePoints(subs []model.Submission) int {
	seen := map[string]bool{}
	for _, s := range subs {
		if s.LatPublic.Valid && s.LngPublic.Valid {
			seen[fmt.Sprintf("%.2f,%.2f", s.LatPublic.Float64, s.LngPublic.Float64)] = true
		}
	}
	return len(seen)
}

// haversineKm is the great-circle distance between two coordinates
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// EarnedAtForCount returns the createdAt of the submission that first
// satisfied a count threshold: the Nth element of the ascending list, or
// nil when the list is still shorter than the threshold.
func EarnedAtForCount(sorted []model.Submission, threshold int) *time.Time {
	if threshold <= 0 || len(sorted) < threshold {
		return nil
	}
	t := sorted[threshold-1].CreatedAt
	return &t
}

// sortByCreatedAt returns an ascending copy, leaving the input untouched
func sortByCreatedAt(subs []model.Submission) []model.Submission {
	sorted := make([]model.Submission, len(subs))
	copy(sorted, subs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}
