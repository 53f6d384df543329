package progress

// XPPerSubmission is the flat reward for every accepted observation
const XPPerSubmission = 10

// tierXP maps a badge tier to its one-time XP reward
var tierXP = map[Tier]int{
	TierBronze:   100,
	TierSilver:   250,
	TierGold:     500,
	TierPlatinum: 1000,
}

// TierXP returns the XP value of a badge tier
func TierXP(t Tier) int {
	return tierXP[t]
}

// LevelDefinition is one row of the fixed level table
type LevelDefinition struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	MinXP int    `json:"minXp"`
}

// levels is ordered by strictly increasing minXp, first entry at 0
var levels = []LevelDefinition{
	{Level: 1, Title: "Nybegynner", MinXP: 0},
	{Level: 2, Title: "Strandvakt", MinXP: 150},
	{Level: 3, Title: "Kystfarer", MinXP: 400},
	{Level: 4, Title: "Havkjentmann", MinXP: 800},
	{Level: 5, Title: "Kystmester", MinXP: 1400},
	{Level: 6, Title: "Havekspert", MinXP: 2200},
	{Level: 7, Title: "Kystnavigator", MinXP: 3500},
	{Level: 8, Title: "Havforsker", MinXP: 5500},
	{Level: 9, Title: "Kystlegende", MinXP: 8500},
	{Level: 10, Title: "Havvokter", MinXP: 13000},
}

// Levels returns a copy of the level table
func Levels() []LevelDefinition {
	out := make([]LevelDefinition, len(levels))
	copy(out, levels)
	return out
}

// XpSummary is a user's full experience state, recomputed on every view.
// Levels are never stored, so they can never drift from the actual XP.
type XpSummary struct {
	SubmissionXP int              `json:"submissionXp"`
	BadgeXP      int              `json:"badgeXp"`
	TotalXP      int              `json:"totalXp"`
	CurrentLevel LevelDefinition  `json:"currentLevel"`
	NextLevel    *LevelDefinition `json:"nextLevel,omitempty"`
	ProgressPct  float64          `json:"progressPct"`
	XPIntoLevel  int              `json:"xpIntoLevel"`
	XPNeeded     int              `json:"xpNeeded"`
}

// ComputeXP derives the XP summary from a submission count and the badge
// list; only badges with status earned contribute.
func ComputeXP(totalSubmissions int, badges []BadgeProgress) XpSummary {
	summary := XpSummary{
		SubmissionXP: totalSubmissions * XPPerSubmission,
	}
	for _, b := range badges {
		if b.Status == StatusEarned {
			summary.BadgeXP += tierXP[b.Tier]
		}
	}
	summary.TotalXP = summary.SubmissionXP + summary.BadgeXP

	current := levels[0]
	for _, lvl := range levels {
		if summary.TotalXP >= lvl.MinXP {
			current = lvl
		} else {
			break
		}
	}
	summary.CurrentLevel = current

	if current.Level < len(levels) {
		next := levels[current.Level] // table index = level number
		summary.NextLevel = &next
		summary.XPIntoLevel = summary.TotalXP - current.MinXP
		summary.XPNeeded = next.MinXP - current.MinXP
		pct := float64(summary.XPIntoLevel) / float64(summary.XPNeeded) * 100
		if pct > 100 {
			pct = 100
		}
		summary.ProgressPct = pct
	} else {
		// Top level: full bar, nothing above
		summary.XPIntoLevel = summary.TotalXP - current.MinXP
		summary.ProgressPct = 100
	}

	return summary
}
