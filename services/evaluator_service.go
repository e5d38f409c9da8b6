package services

import (
	"time"

	"github.com/AFNANSH552/nutrition-ai-agent/store"
	"github.com/AFNANSH552/nutrition-ai-agent/utils"
)

// evaluation grid: 7 day offsets × 4 key hours, up to 10 sampled users.
var evalHours = []int{8, 13, 18, 20}

const (
	evalDays     = 7
	evalMaxUsers = 10
)

// EvaluationResults aggregates quality and safety metrics from an offline
// replay. safety_violations should always be 0; a nonzero value means a food
// slipped past the hard diet/allergy constraints (regression check).
type EvaluationResults struct {
	EligibilityRate       float64 `json:"eligibility_rate"`
	SafetyViolations      int     `json:"safety_violations"`
	TotalNotifications    int     `json:"total_notifications"`
	DiversityUniqueFoods  int     `json:"diversity_unique_foods"`
	DiversityRatio        float64 `json:"diversity_ratio"`
	AvgScore              float64 `json:"avg_score"`
	AvgMessageLength      float64 `json:"avg_message_length"`
	MessagesUnder160Chars float64 `json:"messages_under_160_chars"`
}

// Evaluator replays the orchestrator across a synthetic time grid. It drives
// the orchestrator it is given, recency state included, so successive calls
// within the replay rate-limit each other the way production calls would.
type Evaluator struct {
	svc  *NotificationService
	data *store.Dataset
}

func NewEvaluator(svc *NotificationService, data *store.Dataset) *Evaluator {
	return &Evaluator{svc: svc, data: data}
}

// Run replays up to 10 users (first 10 ids in sorted order, for
// reproducibility) over (day 0..6) × hours {8,13,18,20} starting from base.
func (e *Evaluator) Run(base time.Time) EvaluationResults {
	users := e.data.UserIDs
	if len(users) > evalMaxUsers {
		users = users[:evalMaxUsers]
	}

	var results EvaluationResults
	totalCalls := 0
	eligibleCalls := 0
	foodCounts := make(map[string]int)
	totalItems := 0
	var scoreSum, lengthSum float64
	under160 := 0

	for day := 0; day < evalDays; day++ {
		date := base.AddDate(0, 0, day)
		for _, hour := range evalHours {
			at := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, base.Location())
			for _, userID := range users {
				totalCalls++
				bundles := e.svc.Generate(userID, at)
				if len(bundles) == 0 {
					continue
				}
				eligibleCalls++
				results.TotalNotifications += len(bundles)
				for _, b := range bundles {
					for _, item := range b.Items {
						if e.hasSafetyViolation(userID, item.FoodID) {
							results.SafetyViolations++
						}
						foodCounts[item.FoodID]++
						totalItems++
						scoreSum += item.Score
						msgLen := len([]rune(item.Message))
						lengthSum += float64(msgLen)
						if msgLen <= utils.MaxMessageLen {
							under160++
						}
					}
				}
			}
		}
	}

	if totalCalls > 0 {
		results.EligibilityRate = float64(eligibleCalls) / float64(totalCalls)
	}
	results.DiversityUniqueFoods = len(foodCounts)
	if totalItems > 0 {
		results.DiversityRatio = float64(len(foodCounts)) / float64(totalItems)
		results.AvgScore = scoreSum / float64(totalItems)
		results.AvgMessageLength = lengthSum / float64(totalItems)
		results.MessagesUnder160Chars = float64(under160) / float64(totalItems)
	}
	return results
}

// hasSafetyViolation re-checks an emitted food against the recipient's diet
// and allergy constraints.
func (e *Evaluator) hasSafetyViolation(userID, foodID string) bool {
	user, ok := e.data.Users[userID]
	if !ok {
		return false
	}
	food, ok := e.data.Foods[foodID]
	if !ok {
		return false
	}
	return !utils.DietCompatible(user, food) || utils.HasAllergyRisk(user, food)
}
