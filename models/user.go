package models

// Dietary preference values as they appear in users.json.
const (
	DietVeg    = "veg"
	DietNonVeg = "nonveg"
	DietEgg    = "egg"
)

type User struct {
	UserID         string            `json:"user_id"`
	DietPref       string            `json:"diet_pref"` // "veg" | "nonveg" | "egg"
	Allergies      []string          `json:"allergies"`
	Age            int               `json:"age"`
	Gender         string            `json:"gender"`
	City           string            `json:"city"`
	TZ             string            `json:"tz"`               // IANA zone, e.g. "Asia/Kolkata"
	UsualMealTimes map[string]string `json:"usual_meal_times"` // meal -> "HH:MM" local
	Conditions     []string          `json:"conditions"`
}
