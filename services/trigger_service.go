package services

import (
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
	"github.com/AFNANSH552/nutrition-ai-agent/utils"
)

// Trigger timing constants.
const (
	quietHourStart     = 22 // local hour, inclusive
	quietHourEnd       = 7  // local hour, inclusive
	preMealLead        = 30 * time.Minute
	preMealTolerance   = 5 * time.Minute
	postActivityWindow = 2 * time.Hour
	conditionLookback  = 7 * 24 * time.Hour
	viralHourStart     = 17
	viralHourEnd       = 20
	viralProbability   = 0.1
)

// TriggerResolver decides which named triggers are active for a user at an
// instant. Rules are independent; several triggers can fire on one call.
//
// The social_viral rule draws a fresh random value per resolution, so it is
// not reproducible across calls with identical input. Tests must inject Rand.
type TriggerResolver struct {
	data *store.Dataset
	log  *zap.SugaredLogger

	// Rand is the probability source for the social_viral draw.
	// Defaults to rand.Float64.
	Rand func() float64
}

func NewTriggerResolver(data *store.Dataset, log *zap.SugaredLogger) *TriggerResolver {
	return &TriggerResolver{data: data, log: log, Rand: rand.Float64}
}

// Resolve returns the set of active trigger ids, empty during quiet hours.
// All wall-clock comparisons happen in the user's own timezone.
func (r *TriggerResolver) Resolve(user *models.User, now time.Time) []string {
	loc, err := time.LoadLocation(user.TZ)
	if err != nil {
		// Zones are validated at load; an unknown one here means the user
		// record bypassed the loader.
		r.log.Warnw("unresolvable timezone", "user_id", user.UserID, "tz", user.TZ)
		return nil
	}
	local := now.In(loc)
	hour := local.Hour()

	// Quiet hours short-circuit everything else.
	if hour >= quietHourStart || hour <= quietHourEnd {
		return nil
	}

	var triggers []string

	// Pre-meal: within ±5 minutes of (meal time − 30 minutes), today.
	meals := make([]string, 0, len(user.UsualMealTimes))
	for meal := range user.UsualMealTimes {
		meals = append(meals, meal)
	}
	sort.Strings(meals)
	for _, meal := range meals {
		hhmm, err := time.Parse("15:04", user.UsualMealTimes[meal])
		if err != nil {
			continue
		}
		mealInstant := time.Date(local.Year(), local.Month(), local.Day(), hhmm.Hour(), hhmm.Minute(), 0, 0, loc)
		preMeal := mealInstant.Add(-preMealLead)
		diff := local.Sub(preMeal)
		if diff < 0 {
			diff = -diff
		}
		if diff <= preMealTolerance {
			triggers = append(triggers, "pre_"+meal)
		}
	}

	// Post-activity: any workout logged in the trailing two hours.
	if len(r.data.Events(user.UserID, models.EventWorkedOut, now.Add(-postActivityWindow))) > 0 {
		triggers = append(triggers, "post_activity")
	}

	// Condition reminders: fire when nothing consumed this week supplied any
	// nutrient linked to the condition.
	for _, condition := range user.Conditions {
		if r.shouldRemindCondition(user.UserID, condition, now) {
			triggers = append(triggers, "condition_"+utils.Slugify(condition))
		}
	}

	// Social viral moment: independent 10% draw during evening peak hours.
	if hour >= viralHourStart && hour <= viralHourEnd && r.Rand() < viralProbability {
		triggers = append(triggers, "social_viral")
	}

	return triggers
}

// shouldRemindCondition checks whether the user's trailing-week consumption
// intersects the condition's linked nutrients. An empty intersection means
// the condition has gone unaddressed and the reminder fires.
func (r *TriggerResolver) shouldRemindCondition(userID, condition string, now time.Time) bool {
	required := make(map[string]bool)
	for _, e := range r.data.Index.Entries(condition) {
		required[e.Nutrient] = true
	}
	consumed := r.data.ConsumedNutrients(userID, now.Add(-conditionLookback))
	for nutrient := range consumed {
		if required[nutrient] {
			return false
		}
	}
	return true
}
