package progress

import (
	"database/sql"
	"reflect"
	"testing"
	"time"

	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
)

var testClock = time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func nf(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: true}
}

func sub(created time.Time, level int) model.Submission {
	return model.Submission{
		ID:        "sub-" + created.Format("20060102-150405"),
		Level:     level,
		MediaType: model.MediaTypePhoto,
		CreatedAt: created,
	}
}

func geoSub(created time.Time, lat, lng float64) model.Submission {
	s := sub(created, 1)
	s.LatPublic = nf(lat)
	s.LngPublic = nf(lng)
	return s
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil, testClock)
	if !reflect.DeepEqual(m, Metrics{}) {
		t.Fatalf("expected zero metrics for empty input, got %+v", m)
	}
}

func TestStreak(t *testing.T) {
	day := func(y int, mo time.Month, d int) time.Time {
		return time.Date(y, mo, d, 9, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		days []time.Time
		now  time.Time
		want int
	}{
		{
			name: "three consecutive days ending today",
			days: []time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3)},
			now:  testClock,
			want: 3,
		},
		{
			name: "gap resets the run",
			days: []time.Time{day(2024, 1, 1), day(2024, 1, 5)},
			now:  day(2024, 1, 5),
			want: 1,
		},
		{
			name: "run ending yesterday still counts",
			days: []time.Time{day(2024, 1, 1), day(2024, 1, 2)},
			now:  day(2024, 1, 3),
			want: 2,
		},
		{
			name: "stale run is zero",
			days: []time.Time{day(2024, 1, 1), day(2024, 1, 2)},
			now:  day(2024, 1, 10),
			want: 0,
		},
		{
			name: "several submissions on one day count once",
			days: []time.Time{day(2024, 1, 2), day(2024, 1, 2).Add(3 * time.Hour), day(2024, 1, 3)},
			now:  testClock,
			want: 2,
		},
		{
			name: "no submissions",
			days: nil,
			now:  testClock,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := make([]model.Submission, 0, len(tt.days))
			for _, d := range tt.days {
				subs = append(subs, sub(d, 1))
			}
			if got := Aggregate(subs, tt.now).Streak; got != tt.want {
				t.Errorf("streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLocalHeroDenseCluster(t *testing.T) {
	// Ten points around Bergen, all inside ~2 km of each other
	subs := make([]model.Submission, 0, 10)
	for i := 0; i < 10; i++ {
		subs = append(subs, geoSub(testClock.AddDate(0, 0, -i), 60.39+float64(i)*0.001, 5.32+float64(i)*0.001))
	}

	m := Aggregate(subs, testClock)
	if m.LocalHero < 10 {
		t.Errorf("localHero = %d, want >= 10", m.LocalHero)
	}
}

func TestLocalHeroDistantPoints(t *testing.T) {
	subs := []model.Submission{
		geoSub(testClock, 60.39, 5.32),  // Bergen
		geoSub(testClock, 63.43, 10.39), // Trondheim
		geoSub(testClock, 59.91, 10.75), // Oslo
	}

	if got := Aggregate(subs, testClock).LocalHero; got != 1 {
		t.Errorf("localHero = %d, want 1 for points hundreds of km apart", got)
	}
}

func TestLocalHeroIgnoresUntagged(t *testing.T) {
	subs := []model.Submission{
		sub(testClock, 1),
		geoSub(testClock, 60.39, 5.32),
	}

	if got := Aggregate(subs, testClock).LocalHero; got != 1 {
		t.Errorf("localHero = %d, want 1", got)
	}
}

func TestUniquePointsRounding(t *testing.T) {
	subs := []model.Submission{
		geoSub(testClock, 60.123, 5.321),
		geoSub(testClock, 60.124, 5.322), // same 2-decimal cell
		geoSub(testClock, 60.13, 5.32),   // next cell over
	}

	if got := Aggregate(subs, testClock).UniquePoints; got != 2 {
		t.Errorf("uniquePoints = %d, want 2", got)
	}
}

func TestSeasonalAndMonthMetrics(t *testing.T) {
	subs := []model.Submission{
		sub(time.Date(2023, time.December, 10, 8, 0, 0, 0, time.UTC), 1),
		sub(time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC), 1),
		sub(time.Date(2024, time.February, 5, 8, 0, 0, 0, time.UTC), 1),
		sub(time.Date(2023, time.July, 20, 8, 0, 0, 0, time.UTC), 1),
		sub(time.Date(2022, time.July, 21, 8, 0, 0, 0, time.UTC), 1), // same month, other year
		sub(time.Date(2023, time.April, 1, 8, 0, 0, 0, time.UTC), 1),
	}

	m := Aggregate(subs, testClock)
	if m.WinterCount != 3 {
		t.Errorf("winterCount = %d, want 3", m.WinterCount)
	}
	if m.SummerCount != 2 {
		t.Errorf("summerCount = %d, want 2", m.SummerCount)
	}
	if m.UniqueMonths != 5 {
		t.Errorf("uniqueMonths = %d, want 5 (Dec, Jan, Feb, Jul, Apr)", m.UniqueMonths)
	}
}

func TestConditionMetrics(t *testing.T) {
	storm := sub(testClock, 2)
	storm.WindDir.Valid = true
	storm.WindDir.String = "NW"

	calm := sub(testClock.Add(-time.Hour), 1)
	calm.WaveDir = ns("SE")

	severe := sub(testClock.Add(-2*time.Hour), 3)

	m := Aggregate([]model.Submission{storm, calm, severe}, testClock)
	if m.StormCount != 2 {
		t.Errorf("stormCount = %d, want 2 (level >= 2)", m.StormCount)
	}
	if m.CalmCount != 1 {
		t.Errorf("calmCount = %d, want 1", m.CalmCount)
	}
	if m.WindTaggedCount != 1 {
		t.Errorf("windTaggedCount = %d, want 1", m.WindTaggedCount)
	}
	if m.WaveTaggedCount != 1 {
		t.Errorf("waveTaggedCount = %d, want 1", m.WaveTaggedCount)
	}
}

func TestAggregateSkipsMalformedRecords(t *testing.T) {
	bad := model.Submission{ID: "no-date", Level: 1} // zero createdAt
	badLat := geoSub(testClock, 200, 5.32)
	badLng := geoSub(testClock.Add(-time.Hour), 60.39, -300)
	good := sub(testClock, 1)

	m := Aggregate([]model.Submission{bad, badLat, badLng, good}, testClock)
	if m.Total != 1 {
		t.Errorf("total = %d, want 1 after skipping malformed rows", m.Total)
	}
}

func TestEarnedAtForCount(t *testing.T) {
	subs := []model.Submission{
		sub(testClock.AddDate(0, 0, -3), 1),
		sub(testClock.AddDate(0, 0, -2), 1),
		sub(testClock.AddDate(0, 0, -1), 1),
	}

	if got := EarnedAtForCount(subs, 5); got != nil {
		t.Errorf("expected nil for threshold above list length, got %v", got)
	}
	got := EarnedAtForCount(subs, 2)
	if got == nil || !got.Equal(subs[1].CreatedAt) {
		t.Errorf("earnedAtForCount(2) = %v, want the second submission's createdAt", got)
	}
	if got := EarnedAtForCount(subs, 0); got != nil {
		t.Errorf("expected nil for zero threshold, got %v", got)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	subs := []model.Submission{
		geoSub(testClock.AddDate(0, 0, -1), 60.39, 5.32),
		sub(testClock, 2),
	}

	first := Aggregate(subs, testClock)
	second := Aggregate(subs, testClock)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation is not idempotent: %+v vs %+v", first, second)
	}
}
