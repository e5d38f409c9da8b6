package services

import (
	"fmt"
	"strings"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
	"github.com/AFNANSH552/nutrition-ai-agent/utils"
)

// Trigger -> template id. Condition-prefixed triggers map to
// condition_reminder; anything unmapped falls back to pre_meal_basic.
var triggerTemplates = map[string]string{
	"pre_breakfast": "pre_meal_basic",
	"pre_lunch":     "pre_meal_basic",
	"pre_dinner":    "pre_meal_basic",
	"post_activity": "post_workout",
	"social_viral":  "science_fact",
}

// Trigger -> fact key, parallel to the template mapping.
var triggerFacts = map[string]string{
	"pre_breakfast": "morning_boost",
	"pre_lunch":     "pre_meal",
	"pre_dinner":    "pre_meal",
	"post_activity": "post_activity",
	"social_viral":  "omega3_benefits",
}

const fallbackFact = "Science-backed nutrition timing matters"

// Human-friendly nutrient names for benefit text.
var nutrientNames = map[string]string{
	"vitamin_e":  "Vitamin E",
	"zinc":       "Zinc",
	"vitamin_c":  "Vitamin C",
	"protein":    "protein",
	"iron":       "iron",
	"fiber":      "fiber",
	"omega3":     "Omega-3",
	"probiotics": "probiotics",
	"magnesium":  "magnesium",
}

// Composer turns ranked candidates into notification messages: pick the
// user's primary condition for the food, phrase the benefit, select a
// template and a why-now fact by trigger, and fill the placeholders.
type Composer struct {
	data *store.Dataset
}

func NewComposer(data *store.Dataset) *Composer {
	return &Composer{data: data}
}

// Compose builds messages for the first topN ranked entries, preserving rank
// order.
func (c *Composer) Compose(ranked []RankedCandidate, user *models.User, trigger string, topN int) []models.NotificationCandidate {
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	out := make([]models.NotificationCandidate, 0, len(ranked))
	for _, rc := range ranked {
		condition, keyNutrients := c.primaryCondition(rc.Food, user)
		benefit := benefitText(keyNutrients, condition)
		template := c.data.Templates[c.selectTemplate(trigger)]
		whyNow := c.whyNowFact(trigger)
		cta := buildCTA(rc.Food, condition)
		message := fillTemplate(template.Text, rc.Food, benefit, condition, whyNow)

		out = append(out, models.NotificationCandidate{
			Food:      *rc.Food,
			Score:     rc.Score,
			Breakdown: rc.Breakdown,
			Reasons: models.Reasons{
				Condition:    condition,
				KeyNutrients: keyNutrients,
				WhyNow:       whyNow,
			},
			Message: message,
			CTA:     cta,
		})
	}
	return out
}

// primaryCondition scores each of the user's conditions against the food as
// Σ(link weight × nutrient amount) over nutrients present with a positive
// amount. The strictly highest sum wins; ties keep the first-seen condition
// in profile order. Also returns the nutrients that contributed.
func (c *Composer) primaryCondition(food *models.Food, user *models.User) (string, []string) {
	best := ""
	bestScore := 0.0
	var keyNutrients []string

	for _, condition := range user.Conditions {
		score := 0.0
		var contributing []string
		for _, e := range c.data.Index.Entries(condition) {
			if amount, ok := food.Nutrients[e.Nutrient]; ok && amount > 0 {
				score += e.Weight * amount
				contributing = append(contributing, e.Nutrient)
			}
		}
		if score > bestScore {
			bestScore = score
			best = condition
			keyNutrients = contributing
		}
	}
	return best, keyNutrients
}

// benefitText phrases up to two key nutrients ("A boost", "A + B boost");
// with none it falls back to "supports <condition>".
func benefitText(nutrients []string, condition string) string {
	if len(nutrients) == 0 {
		return "supports " + strings.ToLower(condition)
	}
	top := nutrients
	if len(top) > 2 {
		top = top[:2]
	}
	friendly := make([]string, len(top))
	for i, n := range top {
		if name, ok := nutrientNames[n]; ok {
			friendly[i] = name
		} else {
			friendly[i] = n
		}
	}
	switch len(friendly) {
	case 1:
		return friendly[0] + " boost"
	case 2:
		return friendly[0] + " + " + friendly[1] + " boost"
	default:
		return "nutrient boost"
	}
}

func (c *Composer) selectTemplate(trigger string) string {
	if strings.HasPrefix(trigger, "condition_") {
		return "condition_reminder"
	}
	if id, ok := triggerTemplates[trigger]; ok {
		return id
	}
	return "pre_meal_basic"
}

// whyNowFact resolves the trigger's fact key against the fact table, with a
// fixed generic sentence when the key is absent.
func (c *Composer) whyNowFact(trigger string) string {
	key := "pre_meal"
	if strings.HasPrefix(trigger, "condition_") {
		key = "evening_repair"
	} else if k, ok := triggerFacts[trigger]; ok {
		key = k
	}
	if fact, ok := c.data.Facts[key]; ok {
		return fact
	}
	return fallbackFact
}

func buildCTA(food *models.Food, condition string) models.CTA {
	return models.CTA{
		Label:    "Learn more",
		DeepLink: fmt.Sprintf("app://explore?food=%s&condition=%s", food.FoodID, strings.ReplaceAll(condition, " ", "%20")),
	}
}

// fillTemplate substitutes the placeholder tokens and enforces the message
// length ceiling. Filling is literal and idempotent.
func fillTemplate(text string, food *models.Food, benefit, condition, whyNow string) string {
	filled := strings.NewReplacer(
		"{food}", food.Name,
		"{benefit}", benefit,
		"{condition}", strings.ToLower(condition),
		"{why_now}", whyNow,
		"{cta}", "Try "+strings.ToLower(food.Name),
	).Replace(text)
	return utils.TruncateMessage(filled)
}
