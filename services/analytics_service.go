package services

import (
	"sort"

	"github.com/AFNANSH552/nutrition-ai-agent/store"
)

// SystemStats is the dataset-level overview served by the analytics endpoint.
type SystemStats struct {
	SystemOverview struct {
		TotalUsers          int     `json:"total_users"`
		TotalFoods          int     `json:"total_foods"`
		TotalConditions     int     `json:"total_conditions"`
		VegetarianFoodRatio float64 `json:"vegetarian_foods_ratio"`
	} `json:"system_overview"`
	UserDemographics struct {
		DietPreferences map[string]int `json:"diet_preferences"`
		AgeDistribution map[string]int `json:"age_distribution"`
	} `json:"user_demographics"`
	PopularConditions map[string]int `json:"popular_conditions"`
}

// ComputeSystemStats aggregates user demographics, the vegetarian-food ratio
// and the five most common conditions across profiles.
func ComputeSystemStats(data *store.Dataset) SystemStats {
	var stats SystemStats
	stats.UserDemographics.DietPreferences = make(map[string]int)
	stats.UserDemographics.AgeDistribution = map[string]int{
		"18-25": 0, "26-35": 0, "36-45": 0, "46+": 0,
	}

	conditionCounts := make(map[string]int)
	distinctConditions := make(map[string]bool)
	for _, id := range data.UserIDs {
		user := data.Users[id]
		stats.UserDemographics.DietPreferences[user.DietPref]++
		switch {
		case user.Age <= 25:
			stats.UserDemographics.AgeDistribution["18-25"]++
		case user.Age <= 35:
			stats.UserDemographics.AgeDistribution["26-35"]++
		case user.Age <= 45:
			stats.UserDemographics.AgeDistribution["36-45"]++
		default:
			stats.UserDemographics.AgeDistribution["46+"]++
		}
		for _, c := range user.Conditions {
			conditionCounts[c]++
			distinctConditions[c] = true
		}
	}

	vegFoods := 0
	for _, id := range data.FoodOrder {
		if data.Foods[id].IsVeg {
			vegFoods++
		}
	}

	stats.SystemOverview.TotalUsers = len(data.UserIDs)
	stats.SystemOverview.TotalFoods = len(data.FoodOrder)
	stats.SystemOverview.TotalConditions = len(distinctConditions)
	if len(data.FoodOrder) > 0 {
		stats.SystemOverview.VegetarianFoodRatio = float64(vegFoods) / float64(len(data.FoodOrder))
	}

	// Top five conditions by profile count.
	type cc struct {
		name  string
		count int
	}
	ranked := make([]cc, 0, len(conditionCounts))
	for name, count := range conditionCounts {
		ranked = append(ranked, cc{name, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	stats.PopularConditions = make(map[string]int, len(ranked))
	for _, c := range ranked {
		stats.PopularConditions[c.name] = c.count
	}
	return stats
}
