package models

// ConditionNutrientLink is one row of condition_nutrients.csv: a condition
// label bound to a nutrient with an importance weight in [0,1]. A condition
// maps to many nutrients and a nutrient may serve many conditions.
type ConditionNutrientLink struct {
	Condition  string  `json:"condition"`
	Nutrient   string  `json:"nutrient"`
	Weight     float64 `json:"weight"`
	References string  `json:"references,omitempty"`
}
