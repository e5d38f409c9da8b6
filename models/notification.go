package models

import "time"

// Weights are the fixed linear-ranking coefficients. w5 is a penalty.
type Weights struct {
	W1 float64 `json:"w1"` // CondMatch
	W2 float64 `json:"w2"` // NutrientGapFit
	W3 float64 `json:"w3"` // AvailabilityBoost
	W4 float64 `json:"w4"` // RecencyNovelty
	W5 float64 `json:"w5"` // AllergyRisk (subtracted)
}

// DefaultWeights match the tuned production values.
var DefaultWeights = Weights{W1: 0.4, W2: 0.3, W3: 0.2, W4: 0.1, W5: 0.8}

// ScoreBreakdown is the per-component contribution recorded next to every
// total score for transparency. AllergyRisk stays 0 after hard filtering but
// is kept in the breakdown for audit.
type ScoreBreakdown struct {
	CondMatch         float64 `json:"CondMatch"`
	NutrientGapFit    float64 `json:"NutrientGapFit"`
	AvailabilityBoost float64 `json:"AvailabilityBoost"`
	RecencyNovelty    float64 `json:"RecencyNovelty"`
	AllergyRisk       float64 `json:"AllergyRisk"`
}

type CTA struct {
	Label    string `json:"label"`
	DeepLink string `json:"deep_link"`
}

// Reasons explain why an item was recommended.
type Reasons struct {
	Condition    string   `json:"condition"`
	KeyNutrients []string `json:"key_nutrients"`
	WhyNow       string   `json:"why_now"`
}

// NotificationCandidate is the composed result for one ranked food. It lives
// only for the orchestration call that produced it.
type NotificationCandidate struct {
	Food      Food
	Score     float64
	Breakdown ScoreBreakdown
	Reasons   Reasons
	Message   string
	CTA       CTA
}

// NotificationItem is the wire projection of a candidate.
type NotificationItem struct {
	FoodID          string         `json:"food_id"`
	Name            string         `json:"name"`
	Score           float64        `json:"score"`
	Reasons         Reasons        `json:"reasons"`
	Message         string         `json:"message"`
	CTA             CTA            `json:"cta"`
	ScoresBreakdown ScoreBreakdown `json:"scores_breakdown"`
	Weights         Weights        `json:"weights"`
}

// NotificationBundle is one per-trigger result of an orchestration call.
type NotificationBundle struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Trigger     string             `json:"trigger"`
	GeneratedAt time.Time          `json:"generated_at"`
	Items       []NotificationItem `json:"items"`
}

// RecencyRecord is the {food, timestamp} projection of an emitted
// notification, kept in-process for novelty scoring and rate limiting.
type RecencyRecord struct {
	FoodID string
	TS     time.Time
}
