package progress

// Tier is the reward class of a badge
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Category groups badges for display
type Category string

const (
	CategorySubmissions Category = "innsendinger"
	CategoryGeography   Category = "geografi"
	CategoryStreaks     Category = "streaks"
	CategoryConditions  Category = "forhold"
)

// BadgeDefinition is one fixed entry of the badge catalog
type BadgeDefinition struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tier        Tier     `json:"tier"`
	Category    Category `json:"category"`
	Threshold   int      `json:"threshold"`
}

// catalog is fixed at deploy time and never user-mutable
var catalog = []BadgeDefinition{
	{Key: "first_wave", Title: "Første bølge", Description: "Send inn din første observasjon.", Tier: TierBronze, Category: CategorySubmissions, Threshold: 1},
	{Key: "active_observer", Title: "Aktiv observatør", Description: "Send inn 5 observasjoner.", Tier: TierBronze, Category: CategorySubmissions, Threshold: 5},
	{Key: "dedicated_observer", Title: "Dedikert observatør", Description: "Send inn 10 observasjoner.", Tier: TierSilver, Category: CategorySubmissions, Threshold: 10},
	{Key: "experienced_observer", Title: "Erfaren observatør", Description: "Send inn 25 observasjoner.", Tier: TierGold, Category: CategorySubmissions, Threshold: 25},
	{Key: "master_observer", Title: "Mester observatør", Description: "Send inn 50 observasjoner.", Tier: TierGold, Category: CategorySubmissions, Threshold: 50},
	{Key: "elite_observer", Title: "Elite observatør", Description: "Send inn 100 observasjoner.", Tier: TierPlatinum, Category: CategorySubmissions, Threshold: 100},
	{Key: "legendary_observer", Title: "Legendarisk observatør", Description: "Send inn 250 observasjoner.", Tier: TierPlatinum, Category: CategorySubmissions, Threshold: 250},
	{Key: "local_hero", Title: "Lokal helt", Description: "10 innsendinger innen 10 km radius.", Tier: TierBronze, Category: CategoryGeography, Threshold: 10},
	{Key: "regional_explorer", Title: "Regional utforsker", Description: "Innsendinger fra 3 ulike fylker.", Tier: TierSilver, Category: CategoryGeography, Threshold: 3},
	{Key: "national_observer", Title: "Nasjonal observatør", Description: "Innsendinger fra 5 eller flere fylker.", Tier: TierGold, Category: CategoryGeography, Threshold: 5},
	{Key: "coast_master", Title: "Kystlinjemester", Description: "100 unike GPS-punkter.", Tier: TierPlatinum, Category: CategoryGeography, Threshold: 100},
	{Key: "week_streak", Title: "Ukestreak", Description: "Send inn hver dag i 7 dager.", Tier: TierBronze, Category: CategoryStreaks, Threshold: 7},
	{Key: "month_streak", Title: "Månedstreak", Description: "Send inn hver dag i 30 dager.", Tier: TierGold, Category: CategoryStreaks, Threshold: 30},
	{Key: "winter_observer", Title: "Vinterobservatør", Description: "10 innsendinger i desember–februar.", Tier: TierSilver, Category: CategoryStreaks, Threshold: 10},
	{Key: "summer_observer", Title: "Sommerobservatør", Description: "10 innsendinger i juni–august.", Tier: TierSilver, Category: CategoryStreaks, Threshold: 10},
	{Key: "year_round", Title: "Hele året", Description: "Innsendinger i alle 12 måneder.", Tier: TierPlatinum, Category: CategoryStreaks, Threshold: 12},
	{Key: "storm_hunter", Title: "Stormjeger", Description: "5 innsendinger med større bølger.", Tier: TierGold, Category: CategoryConditions, Threshold: 5},
	{Key: "calm_guardian", Title: "Rolig sjøvokter", Description: "10 innsendinger med rolig havflate.", Tier: TierBronze, Category: CategoryConditions, Threshold: 10},
	{Key: "wind_meter", Title: "Vindmåler", Description: "20 innsendinger med vindretning.", Tier: TierSilver, Category: CategoryConditions, Threshold: 20},
	{Key: "wave_expert", Title: "Bølgeekspert", Description: "20 innsendinger med bølgeretning.", Tier: TierSilver, Category: CategoryConditions, Threshold: 20},
}

// Catalog returns a copy of the badge catalog in display order
func Catalog() []BadgeDefinition {
	out := make([]BadgeDefinition, len(catalog))
	copy(out, catalog)
	return out
}
