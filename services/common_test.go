package services

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
)

// Fixed reference instant: 07:00 UTC == 12:30 IST, i.e. exactly 30 minutes
// before testUserVeg's 13:00 lunch.
var testNow = time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)

func istZone(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load Asia/Kolkata: %v", err)
	}
	return loc
}

func testUsers() []models.User {
	return []models.User{
		{
			UserID: "u001", DietPref: models.DietVeg, Allergies: []string{"nuts"},
			Age: 28, Gender: "F", City: "Mumbai", TZ: "Asia/Kolkata",
			UsualMealTimes: map[string]string{"breakfast": "08:00", "lunch": "13:00", "dinner": "20:00"},
			Conditions:     []string{"Glowing skin"},
		},
		{
			UserID: "u002", DietPref: models.DietNonVeg,
			Age: 35, Gender: "M", City: "Delhi", TZ: "Asia/Kolkata",
			UsualMealTimes: map[string]string{"lunch": "13:00"},
			Conditions:     []string{"Muscle pain", "Gut health"},
		},
		{
			UserID: "u003", DietPref: models.DietEgg,
			Age: 42, Gender: "Other", City: "Pune", TZ: "Asia/Kolkata",
			UsualMealTimes: map[string]string{"dinner": "20:00"},
			Conditions:     []string{"Glowing skin", "Muscle pain"},
		},
	}
}

func testFoods() []models.Food {
	return []models.Food{
		{FoodID: "f001", Name: "Soaked Almonds", IsVeg: true, Ingredients: []string{"almonds"}, Tags: []string{"nuts", "protein"},
			Nutrients: map[string]float64{"protein": 6.0, "vitamin_e": 7.3, "zinc": 0.9, "fiber": 3.5}},
		{FoodID: "f002", Name: "Greek Yogurt", IsVeg: true, Ingredients: []string{"milk", "yogurt cultures"}, Tags: []string{"dairy", "probiotic"},
			Nutrients: map[string]float64{"protein": 10.0, "probiotics": 1.0, "calcium": 120}},
		{FoodID: "f003", Name: "Spinach Salad", IsVeg: true, Ingredients: []string{"spinach", "tomatoes"}, Tags: []string{"leafy_greens"},
			Nutrients: map[string]float64{"iron": 2.7, "vitamin_c": 28.1, "fiber": 2.2}},
		{FoodID: "f006", Name: "Banana", IsVeg: true, Ingredients: []string{"banana"}, Tags: []string{"fruit"},
			Nutrients: map[string]float64{"potassium": 358, "vitamin_b6": 0.4}},
		{FoodID: "f007", Name: "Salmon Fillet", IsVeg: false, Ingredients: []string{"salmon"}, Tags: []string{"fish", "omega3"},
			Nutrients: map[string]float64{"protein": 25.4, "omega3": 1.8, "vitamin_d": 11.0}},
		{FoodID: "f010", Name: "Eggs", IsVeg: false, Ingredients: []string{"eggs"}, Tags: []string{"complete_protein"},
			Nutrients: map[string]float64{"protein": 13.0, "biotin": 10.0, "vitamin_b12": 0.9}},
	}
}

func testLinks() []models.ConditionNutrientLink {
	return []models.ConditionNutrientLink{
		{Condition: "Glowing skin", Nutrient: "vitamin_e", Weight: 0.9},
		{Condition: "Glowing skin", Nutrient: "zinc", Weight: 0.8},
		{Condition: "Glowing skin", Nutrient: "vitamin_c", Weight: 0.7},
		{Condition: "Glowing skin", Nutrient: "omega3", Weight: 0.6},
		{Condition: "Muscle pain", Nutrient: "magnesium", Weight: 0.9},
		{Condition: "Muscle pain", Nutrient: "protein", Weight: 0.8},
		{Condition: "Muscle pain", Nutrient: "omega3", Weight: 0.7},
		{Condition: "Gut health", Nutrient: "fiber", Weight: 0.9},
		{Condition: "Gut health", Nutrient: "probiotics", Weight: 0.8},
	}
}

func testTemplates() []models.MessageTemplate {
	return []models.MessageTemplate{
		{TemplateID: "pre_meal_basic", Text: "{food} now for {benefit} → supports {condition}. Try {cta}", Style: "friendly", Lang: "en"},
		{TemplateID: "post_workout", Text: "Post-workout fuel: {food} provides {benefit} for {condition}. {cta}", Style: "punchy", Lang: "en"},
		{TemplateID: "science_fact", Text: "{why_now} — {food} delivers {benefit} for {condition}. {cta}", Style: "sciencey", Lang: "en"},
		{TemplateID: "condition_reminder", Text: "Haven't focused on {condition} lately? {food} provides {benefit}. {cta}", Style: "gentle", Lang: "en"},
	}
}

func testFacts() map[string]string {
	return map[string]string{
		"morning_boost":   "Skin cell turnover peaks overnight — support with antioxidants",
		"pre_meal":        "Pre-meal protein moderates glycemic response by 23%",
		"post_activity":   "Glycogen resynthesis is highest within 2 hours post-workout",
		"evening_repair":  "Evening nutrition supports overnight muscle repair",
		"omega3_benefits": "Omega-3s reduce inflammation markers within hours",
	}
}

func newTestDataset(t *testing.T, activity []models.ActivityEvent) *store.Dataset {
	t.Helper()
	ds, err := store.NewDataset(testUsers(), testFoods(), testLinks(), testTemplates(), testFacts(), activity)
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return ds
}

// newTestService wires an orchestrator over a fresh recency store with the
// social_viral draw pinned off.
func newTestService(t *testing.T, activity []models.ActivityEvent) (*NotificationService, *store.RecencyStore) {
	t.Helper()
	ds := newTestDataset(t, activity)
	recency := store.NewRecencyStore()
	svc := NewNotificationService(ds, recency, zap.NewNop().Sugar())
	svc.resolver.Rand = func() float64 { return 0.99 }
	return svc, recency
}

func containsTrigger(triggers []string, want string) bool {
	for _, tr := range triggers {
		if tr == want {
			return true
		}
	}
	return false
}
