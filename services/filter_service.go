package services

import (
	"time"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
	"github.com/AFNANSH552/nutrition-ai-agent/utils"
)

// CandidateFilter reduces the catalog to foods that are safe and relevant for
// a user. All constraints are hard: a failed check excludes the food outright.
type CandidateFilter struct {
	data *store.Dataset
}

func NewCandidateFilter(data *store.Dataset) *CandidateFilter {
	return &CandidateFilter{data: data}
}

// Filter returns eligible foods in catalog order. The trigger is accepted for
// future trigger-specific eligibility rules; it does not affect the result
// today.
func (f *CandidateFilter) Filter(user *models.User, now time.Time, trigger string) []*models.Food {
	var candidates []*models.Food
	for _, id := range f.data.FoodOrder {
		food := f.data.Foods[id]
		if !utils.DietCompatible(user, food) {
			continue
		}
		if utils.HasAllergyRisk(user, food) {
			continue
		}
		if !f.RelevantToConditions(user, food) {
			continue
		}
		if !f.Available(user, food, now) {
			continue
		}
		candidates = append(candidates, food)
	}
	return candidates
}

// RelevantToConditions reports whether the food supplies at least one
// nutrient linked to at least one of the user's conditions.
func (f *CandidateFilter) RelevantToConditions(user *models.User, food *models.Food) bool {
	for _, condition := range user.Conditions {
		for _, e := range f.data.Index.Entries(condition) {
			if _, ok := food.Nutrients[e.Nutrient]; ok {
				return true
			}
		}
	}
	return false
}

// Available is the hook for a real availability service. Always true for now.
func (f *CandidateFilter) Available(user *models.User, food *models.Food, now time.Time) bool {
	return true
}
