package utils

import "github.com/AFNANSH552/nutrition-ai-agent/models"

// DietCompatible reports whether a food is allowed under the user's dietary
// preference. Vegetarians get vegetarian foods only; eggetarians additionally
// accept anything with eggs among the ingredients; non-vegetarians accept
// everything. Unknown preferences pass (the loader rejects them up front).
func DietCompatible(user *models.User, food *models.Food) bool {
	switch user.DietPref {
	case models.DietVeg:
		return food.IsVeg
	case models.DietNonVeg:
		return true
	case models.DietEgg:
		if food.IsVeg {
			return true
		}
		for _, ing := range food.Ingredients {
			if ing == "eggs" {
				return true
			}
		}
		return false
	}
	return true
}

// Allergens returns the overlap between the user's allergy set and the union
// of the food's tags and ingredients. Order-independent, symmetric.
func Allergens(user *models.User, food *models.Food) []string {
	if len(user.Allergies) == 0 {
		return nil
	}
	allergic := make(map[string]bool, len(user.Allergies))
	for _, a := range user.Allergies {
		allergic[a] = true
	}
	var hits []string
	seen := make(map[string]bool)
	check := func(tag string) {
		if allergic[tag] && !seen[tag] {
			seen[tag] = true
			hits = append(hits, tag)
		}
	}
	for _, t := range food.Tags {
		check(t)
	}
	for _, ing := range food.Ingredients {
		check(ing)
	}
	return hits
}

// HasAllergyRisk reports whether the food touches any of the user's allergies.
func HasAllergyRisk(user *models.User, food *models.Food) bool {
	return len(Allergens(user, food)) > 0
}
