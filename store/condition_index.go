package store

import (
	"sort"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
)

// NutrientWeight is one indexed (nutrient, weight) entry under a condition.
type NutrientWeight struct {
	Nutrient   string
	Weight     float64
	References string
}

// ConditionIndex is the precomputed condition -> (nutrient, weight) lookup,
// built once at load time so the scoring path never scans the raw link rows.
//
// Duplicate (condition, nutrient) rows are legal. The two aggregations differ
// on purpose and are named separately: gap targets take the MAX weight,
// cosine-similarity vectors take the MEAN weight. This asymmetry is inherited
// product behavior; do not unify without a product decision.
type ConditionIndex struct {
	byCondition map[string][]NutrientWeight
	conditions  []string // sorted unique condition labels
}

func BuildConditionIndex(links []models.ConditionNutrientLink) *ConditionIndex {
	ix := &ConditionIndex{byCondition: make(map[string][]NutrientWeight)}
	for _, l := range links {
		ix.byCondition[l.Condition] = append(ix.byCondition[l.Condition], NutrientWeight{
			Nutrient:   l.Nutrient,
			Weight:     l.Weight,
			References: l.References,
		})
	}
	for c := range ix.byCondition {
		ix.conditions = append(ix.conditions, c)
	}
	sort.Strings(ix.conditions)
	return ix
}

// Conditions returns every known condition label, sorted.
func (ix *ConditionIndex) Conditions() []string {
	return ix.conditions
}

// Entries returns the indexed rows for one condition in original row order.
func (ix *ConditionIndex) Entries(condition string) []NutrientWeight {
	return ix.byCondition[condition]
}

// Nutrients returns the sorted union of nutrients linked to any of the given
// conditions. This is the shared axis for the CondMatch vectors.
func (ix *ConditionIndex) Nutrients(conditions []string) []string {
	seen := make(map[string]bool)
	for _, c := range conditions {
		for _, e := range ix.byCondition[c] {
			seen[e.Nutrient] = true
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// GapTargets aggregates per-nutrient target weights across the given
// conditions using the MAX link weight. Used for nutrient-gap sizing.
func (ix *ConditionIndex) GapTargets(conditions []string) map[string]float64 {
	targets := make(map[string]float64)
	for _, c := range conditions {
		for _, e := range ix.byCondition[c] {
			if e.Weight > targets[e.Nutrient] {
				targets[e.Nutrient] = e.Weight
			}
		}
	}
	return targets
}

// MeanWeights aggregates per-nutrient weights across every row matching the
// given conditions using the MEAN. Used for the cosine condition vector.
func (ix *ConditionIndex) MeanWeights(conditions []string) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, c := range conditions {
		for _, e := range ix.byCondition[c] {
			sums[e.Nutrient] += e.Weight
			counts[e.Nutrient]++
		}
	}
	means := make(map[string]float64, len(sums))
	for n, sum := range sums {
		means[n] = sum / float64(counts[n])
	}
	return means
}
