package services

import (
	"sort"
	"time"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
	"github.com/AFNANSH552/nutrition-ai-agent/utils"
)

const (
	rankerGapLookback     = 24 * time.Hour
	rankerNoveltyLookback = 7 * 24 * time.Hour
	noveltyRepeatScore    = 0.1
	noveltyFreshScore     = 0.9
)

// RankedCandidate pairs a food with its total score and the per-component
// breakdown behind it.
type RankedCandidate struct {
	Food      *models.Food
	Score     float64
	Breakdown models.ScoreBreakdown
}

// Ranker scores candidates with the fixed weighted linear formula
//
//	w1·CondMatch + w2·NutrientGapFit + w3·AvailabilityBoost
//	+ w4·RecencyNovelty − w5·AllergyRisk
//
// All component math degrades to 0 on missing data; scoring never errors.
type Ranker struct {
	data    *store.Dataset
	weights models.Weights
}

func NewRanker(data *store.Dataset, weights models.Weights) *Ranker {
	return &Ranker{data: data, weights: weights}
}

// Rank scores and sorts candidates descending by total score. The sort is
// stable, so ties keep catalog order. recent is the caller's snapshot of the
// user's recency records.
func (r *Ranker) Rank(candidates []*models.Food, user *models.User, now time.Time, trigger string, recent []models.RecencyRecord) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, food := range candidates {
		breakdown := models.ScoreBreakdown{
			CondMatch:         r.conditionMatch(food, user),
			NutrientGapFit:    r.nutrientGapFit(food, user, now),
			AvailabilityBoost: 1.0, // placeholder external signal
			RecencyNovelty:    r.recencyNovelty(food, now, recent),
			AllergyRisk:       0.0, // hard-excluded upstream; kept for audit
		}
		total := r.weights.W1*breakdown.CondMatch +
			r.weights.W2*breakdown.NutrientGapFit +
			r.weights.W3*breakdown.AvailabilityBoost +
			r.weights.W4*breakdown.RecencyNovelty -
			r.weights.W5*breakdown.AllergyRisk
		ranked = append(ranked, RankedCandidate{Food: food, Score: total, Breakdown: breakdown})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// conditionMatch is the cosine similarity between the food's amounts and the
// mean link weights, both indexed over the union of nutrients linked to the
// user's conditions. No conditions, or zero vectors, score 0.
func (r *Ranker) conditionMatch(food *models.Food, user *models.User) float64 {
	nutrients := r.data.Index.Nutrients(user.Conditions)
	if len(nutrients) == 0 {
		return 0
	}
	means := r.data.Index.MeanWeights(user.Conditions)
	foodVec := make([]float64, len(nutrients))
	condVec := make([]float64, len(nutrients))
	for i, n := range nutrients {
		foodVec[i] = food.Nutrients[n]
		condVec[i] = means[n]
	}
	return utils.CosineSimilarity(foodVec, condVec)
}

// nutrientGapFit measures how well the food covers the user's open nutrient
// gaps. A gap exists when trailing-24h consumption falls short of the max
// link weight target; coverage of one gap is capped at 1. The score is the
// mean coverage across gapped nutrients, 0 when nothing is gapped.
func (r *Ranker) nutrientGapFit(food *models.Food, user *models.User, now time.Time) float64 {
	targets := r.data.Index.GapTargets(user.Conditions)
	if len(targets) == 0 {
		return 0
	}
	consumed := r.data.ConsumedNutrients(user.UserID, now.Add(-rankerGapLookback))

	var coverage float64
	gaps := 0
	for nutrient, target := range targets {
		have := consumed[nutrient]
		if have >= target {
			continue
		}
		gap := target - have
		gaps++
		if gap > 0 {
			c := food.Nutrients[nutrient] / gap
			if c > 1 {
				c = 1
			}
			coverage += c
		}
	}
	if gaps == 0 {
		return 0
	}
	return coverage / float64(gaps)
}

// recencyNovelty is a binary signal: foods recommended to this user within
// the trailing 7 days score low, everything else scores high.
func (r *Ranker) recencyNovelty(food *models.Food, now time.Time, recent []models.RecencyRecord) float64 {
	cutoff := now.Add(-rankerNoveltyLookback)
	for _, rec := range recent {
		if rec.FoodID == food.FoodID && !rec.TS.Before(cutoff) {
			return noveltyRepeatScore
		}
	}
	return noveltyFreshScore
}
