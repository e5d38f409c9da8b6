package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
)

// MockDataGenerator writes a synthetic but structurally realistic dataset:
// 20 users, the fixed 12-food catalog, the condition-nutrient table, a week
// of activity, the 4 templates and the fact table. Seeded for reproducible
// output in tests.
type MockDataGenerator struct {
	rng *rand.Rand
}

func NewMockDataGenerator(seed int64) *MockDataGenerator {
	return &MockDataGenerator{rng: rand.New(rand.NewSource(seed))}
}

var (
	mockConditions = []string{
		"Glowing skin", "Hair fall", "Gut health", "Muscle pain",
		"Nail issues", "Energy boost", "Weight management", "Immunity",
	}
	mockCities    = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Pune"}
	mockAllergens = []string{"nuts", "dairy", "gluten", "shellfish"}
	mockDiets     = []string{models.DietVeg, models.DietNonVeg, models.DietEgg}
	mockGenders   = []string{"M", "F", "Other"}
)

func (g *MockDataGenerator) Users() []models.User {
	users := make([]models.User, 0, 20)
	for i := 1; i <= 20; i++ {
		users = append(users, models.User{
			UserID:    fmt.Sprintf("u%03d", i),
			DietPref:  g.choice(mockDiets),
			Allergies: g.sample(mockAllergens, g.rng.Intn(3)),
			Age:       22 + g.rng.Intn(44),
			Gender:    g.choice(mockGenders),
			City:      g.choice(mockCities),
			TZ:        "Asia/Kolkata",
			UsualMealTimes: map[string]string{
				"breakfast": g.mealTime(7, 9),
				"lunch":     g.mealTime(12, 14),
				"dinner":    g.mealTime(19, 21),
			},
			Conditions: g.sample(mockConditions, 2+g.rng.Intn(3)),
		})
	}
	return users
}

func (g *MockDataGenerator) Foods() []models.Food {
	return []models.Food{
		{FoodID: "f001", Name: "Soaked Almonds", IsVeg: true, Ingredients: []string{"almonds"}, Tags: []string{"nuts", "protein"},
			Nutrients: map[string]float64{"protein": 6.0, "vitamin_e": 7.3, "zinc": 0.9, "fiber": 3.5}},
		{FoodID: "f002", Name: "Greek Yogurt", IsVeg: true, Ingredients: []string{"milk", "yogurt cultures"}, Tags: []string{"dairy", "probiotic"},
			Nutrients: map[string]float64{"protein": 10.0, "probiotics": 1.0, "calcium": 120}},
		{FoodID: "f003", Name: "Spinach Salad", IsVeg: true, Ingredients: []string{"spinach", "tomatoes"}, Tags: []string{"leafy_greens"},
			Nutrients: map[string]float64{"iron": 2.7, "vitamin_c": 28.1, "fiber": 2.2, "folate": 58.2}},
		{FoodID: "f004", Name: "Grilled Chicken Breast", IsVeg: false, Ingredients: []string{"chicken breast"}, Tags: []string{"lean_protein"},
			Nutrients: map[string]float64{"protein": 31.0, "vitamin_b12": 0.3, "iron": 1.0}},
		{FoodID: "f005", Name: "Quinoa Bowl", IsVeg: true, Ingredients: []string{"quinoa", "vegetables"}, Tags: []string{"whole_grain", "complete_protein"},
			Nutrients: map[string]float64{"protein": 8.1, "fiber": 5.2, "iron": 2.8, "magnesium": 118}},
		{FoodID: "f006", Name: "Banana", IsVeg: true, Ingredients: []string{"banana"}, Tags: []string{"fruit"},
			Nutrients: map[string]float64{"potassium": 358, "vitamin_b6": 0.4, "complex_carbs": 22.8}},
		{FoodID: "f007", Name: "Salmon Fillet", IsVeg: false, Ingredients: []string{"salmon"}, Tags: []string{"fish", "omega3"},
			Nutrients: map[string]float64{"protein": 25.4, "omega3": 1.8, "vitamin_d": 11.0}},
		{FoodID: "f008", Name: "Avocado", IsVeg: true, Ingredients: []string{"avocado"}, Tags: []string{"healthy_fats"},
			Nutrients: map[string]float64{"fiber": 10.0, "vitamin_e": 2.1, "potassium": 485}},
		{FoodID: "f009", Name: "Lentil Dal", IsVeg: true, Ingredients: []string{"lentils", "spices"}, Tags: []string{"legumes", "protein"},
			Nutrients: map[string]float64{"protein": 9.0, "iron": 3.3, "fiber": 8.0, "folate": 180}},
		{FoodID: "f010", Name: "Eggs", IsVeg: false, Ingredients: []string{"eggs"}, Tags: []string{"complete_protein"},
			Nutrients: map[string]float64{"protein": 13.0, "biotin": 10.0, "vitamin_b12": 0.9, "choline": 147}},
		{FoodID: "f011", Name: "Sweet Potato", IsVeg: true, Ingredients: []string{"sweet potato"}, Tags: []string{"root_vegetable"},
			Nutrients: map[string]float64{"vitamin_a": 14187, "fiber": 3.8, "complex_carbs": 20.1, "potassium": 337}},
		{FoodID: "f012", Name: "Walnuts", IsVeg: true, Ingredients: []string{"walnuts"}, Tags: []string{"nuts", "omega3"},
			Nutrients: map[string]float64{"omega3": 2.5, "protein": 4.3, "vitamin_e": 0.7, "magnesium": 45}},
	}
}

func (g *MockDataGenerator) Links() []models.ConditionNutrientLink {
	return []models.ConditionNutrientLink{
		{Condition: "Glowing skin", Nutrient: "vitamin_e", Weight: 0.9, References: "PMID:12345"},
		{Condition: "Glowing skin", Nutrient: "zinc", Weight: 0.8, References: "PMID:12346"},
		{Condition: "Glowing skin", Nutrient: "vitamin_c", Weight: 0.7, References: "PMID:12347"},
		{Condition: "Glowing skin", Nutrient: "omega3", Weight: 0.6},
		{Condition: "Hair fall", Nutrient: "biotin", Weight: 0.9, References: "PMID:23456"},
		{Condition: "Hair fall", Nutrient: "iron", Weight: 0.8, References: "PMID:23457"},
		{Condition: "Hair fall", Nutrient: "protein", Weight: 0.7, References: "PMID:23458"},
		{Condition: "Hair fall", Nutrient: "zinc", Weight: 0.6},
		{Condition: "Gut health", Nutrient: "fiber", Weight: 0.9, References: "PMID:34567"},
		{Condition: "Gut health", Nutrient: "probiotics", Weight: 0.8, References: "PMID:34568"},
		{Condition: "Gut health", Nutrient: "prebiotics", Weight: 0.7, References: "PMID:34569"},
		{Condition: "Muscle pain", Nutrient: "magnesium", Weight: 0.9, References: "PMID:45678"},
		{Condition: "Muscle pain", Nutrient: "protein", Weight: 0.8, References: "PMID:45679"},
		{Condition: "Muscle pain", Nutrient: "omega3", Weight: 0.7},
		{Condition: "Energy boost", Nutrient: "iron", Weight: 0.9, References: "PMID:56789"},
		{Condition: "Energy boost", Nutrient: "vitamin_b12", Weight: 0.8, References: "PMID:56790"},
		{Condition: "Energy boost", Nutrient: "complex_carbs", Weight: 0.7},
		{Condition: "Immunity", Nutrient: "vitamin_c", Weight: 0.9, References: "PMID:67890"},
		{Condition: "Immunity", Nutrient: "zinc", Weight: 0.8, References: "PMID:67891"},
		{Condition: "Immunity", Nutrient: "vitamin_d", Weight: 0.7},
	}
}

// Activity generates a trailing week of consumed/skipped meals plus workout
// events relative to now.
func (g *MockDataGenerator) Activity(now time.Time) []models.ActivityEvent {
	var events []models.ActivityEvent
	base := now.AddDate(0, 0, -7)
	meals := []string{"breakfast", "lunch", "dinner"}

	for day := 0; day < 7; day++ {
		date := base.AddDate(0, 0, day)
		userIDs := make([]string, 20)
		for i := range userIDs {
			userIDs[i] = fmt.Sprintf("u%03d", i+1)
		}
		for _, userID := range g.sample(userIDs, 10+g.rng.Intn(6)) {
			for range g.sample(meals, 1+g.rng.Intn(3)) {
				events = append(events, models.ActivityEvent{
					UserID: userID,
					TS:     date.Add(time.Duration(g.rng.Intn(24)) * time.Hour),
					Event:  g.choice([]string{models.EventConsumed, models.EventSkipped}),
					FoodID: fmt.Sprintf("f%03d", 1+g.rng.Intn(12)),
				})
			}
			if g.rng.Float64() < 0.4 {
				events = append(events, models.ActivityEvent{
					UserID:      userID,
					TS:          date.Add(time.Duration(6+g.rng.Intn(15)) * time.Hour),
					Event:       models.EventWorkedOut,
					DurationMin: 30 + g.rng.Intn(61),
				})
			}
		}
	}
	return events
}

func (g *MockDataGenerator) Templates() []models.MessageTemplate {
	return []models.MessageTemplate{
		{TemplateID: "pre_meal_basic", Text: "{food} now for {benefit} → supports {condition}. Try {cta}", Style: "friendly", Lang: "en"},
		{TemplateID: "post_workout", Text: "Post-workout fuel: {food} provides {benefit} for {condition}. {cta} 💪", Style: "punchy", Lang: "en"},
		{TemplateID: "science_fact", Text: "{why_now} — {food} delivers {benefit} for {condition}. {cta}", Style: "sciencey", Lang: "en"},
		{TemplateID: "condition_reminder", Text: "Haven't focused on {condition} lately? {food} provides {benefit}. {cta}", Style: "gentle", Lang: "en"},
	}
}

func (g *MockDataGenerator) Facts() map[string]string {
	return map[string]string{
		"morning_boost":    "Skin cell turnover peaks overnight — support with antioxidants",
		"pre_meal":         "Pre-meal protein moderates glycemic response by 23%",
		"post_activity":    "Glycogen resynthesis is highest within 2 hours post-workout",
		"evening_repair":   "Evening nutrition supports overnight muscle repair",
		"gut_timing":       "Probiotic absorption peaks during active digestion",
		"iron_absorption":  "Vitamin C increases iron absorption by up to 3x",
		"magnesium_timing": "Magnesium helps muscle relaxation and recovery",
		"omega3_benefits":  "Omega-3s reduce inflammation markers within hours",
	}
}

// WriteAll writes the six data files into dir, creating it if needed.
func (g *MockDataGenerator) WriteAll(dir string, now time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(dir, store.UsersFile), g.Users()); err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(dir, store.FoodsFile), g.Foods()); err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(dir, store.TemplatesFile), g.Templates()); err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(dir, store.FactsFile), g.Facts()); err != nil {
		return err
	}
	if err := g.writeLinksCSV(filepath.Join(dir, store.LinksFile)); err != nil {
		return err
	}
	return g.writeActivityCSV(filepath.Join(dir, store.ActivityFile), now)
}

func (g *MockDataGenerator) writeLinksCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"condition", "nutrient", "weight", "references"}); err != nil {
		return err
	}
	for _, l := range g.Links() {
		if err := w.Write([]string{l.Condition, l.Nutrient, strconv.FormatFloat(l.Weight, 'f', -1, 64), l.References}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (g *MockDataGenerator) writeActivityCSV(path string, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"user_id", "ts", "event", "food_id", "duration_min"}); err != nil {
		return err
	}
	for _, ev := range g.Activity(now) {
		duration := ""
		if ev.DurationMin > 0 {
			duration = strconv.Itoa(ev.DurationMin)
		}
		if err := w.Write([]string{ev.UserID, ev.TS.UTC().Format(time.RFC3339), ev.Event, ev.FoodID, duration}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSONFile(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (g *MockDataGenerator) choice(options []string) string {
	return options[g.rng.Intn(len(options))]
}

// sample picks n distinct elements, preserving no particular order.
func (g *MockDataGenerator) sample(options []string, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	idx := g.rng.Perm(len(options))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = options[j]
	}
	return out
}

func (g *MockDataGenerator) mealTime(minHour, maxHour int) string {
	minute := "00"
	if g.rng.Intn(2) == 1 {
		minute = "30"
	}
	return fmt.Sprintf("%02d:%s", minHour+g.rng.Intn(maxHour-minHour+1), minute)
}
