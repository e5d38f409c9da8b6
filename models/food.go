package models

type Food struct {
	FoodID      string             `json:"food_id"`
	Name        string             `json:"name"`
	IsVeg       bool               `json:"is_veg"`
	Ingredients []string           `json:"ingredients"`
	Tags        []string           `json:"tags"` // category/allergen tags
	Nutrients   map[string]float64 `json:"nutrients"`
}
