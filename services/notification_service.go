package services

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
	"github.com/AFNANSH552/nutrition-ai-agent/utils"
)

// Rate-limit policy, checked once per call before trigger resolution.
const (
	dailyNotificationCap = 2
	minNotificationGap   = 3 * time.Hour
)

// NotificationService is the per-call orchestrator: rate limits, then per
// active trigger runs filter -> rank -> compose (top 1) and records the
// emitted food in the recency store.
type NotificationService struct {
	data     *store.Dataset
	recency  *store.RecencyStore
	resolver *TriggerResolver
	filter   *CandidateFilter
	ranker   *Ranker
	composer *Composer
	weights  models.Weights
	log      *zap.SugaredLogger
}

func NewNotificationService(data *store.Dataset, recency *store.RecencyStore, log *zap.SugaredLogger) *NotificationService {
	return &NotificationService{
		data:     data,
		recency:  recency,
		resolver: NewTriggerResolver(data, log),
		filter:   NewCandidateFilter(data),
		ranker:   NewRanker(data, models.DefaultWeights),
		composer: NewComposer(data),
		weights:  models.DefaultWeights,
		log:      log,
	}
}

// Resolver exposes the trigger resolver for inspection endpoints and for
// tests that need to pin the random source.
func (s *NotificationService) Resolver() *TriggerResolver { return s.resolver }

// Filter exposes the candidate filter's single-food predicates.
func (s *NotificationService) Filter() *CandidateFilter { return s.filter }

// Generate produces one notification bundle per active trigger for the user
// at the given instant. Unknown users and rate-limited calls return nil
// without error; "fewer or zero notifications" is the only failure mode.
//
// The whole decide-and-append sequence runs under the user's recency lock so
// two simultaneous calls for one user cannot both pass the rate check.
func (s *NotificationService) Generate(userID string, now time.Time) []models.NotificationBundle {
	user, ok := s.data.Users[userID]
	if !ok {
		return nil
	}

	var bundles []models.NotificationBundle
	s.recency.WithUser(userID, func(v *store.UserView) {
		if !s.withinRateLimits(user, v.Records(), now) {
			s.log.Debugw("rate limited", "user_id", userID)
			return
		}
		triggers := s.resolver.Resolve(user, now)
		if len(triggers) == 0 {
			return
		}

		for _, trigger := range triggers {
			candidates := s.filter.Filter(user, now, trigger)
			if len(candidates) == 0 {
				continue
			}
			ranked := s.ranker.Rank(candidates, user, now, trigger, v.Records())
			composed := s.composer.Compose(ranked, user, trigger, 1)
			if len(composed) == 0 {
				continue
			}

			items := make([]models.NotificationItem, 0, len(composed))
			for _, nc := range composed {
				items = append(items, models.NotificationItem{
					FoodID:  nc.Food.FoodID,
					Name:    nc.Food.Name,
					Score:   utils.Round3(nc.Score),
					Reasons: nc.Reasons,
					Message: nc.Message,
					CTA:     nc.CTA,
					ScoresBreakdown: models.ScoreBreakdown{
						CondMatch:         utils.Round3(nc.Breakdown.CondMatch),
						NutrientGapFit:    utils.Round3(nc.Breakdown.NutrientGapFit),
						AvailabilityBoost: utils.Round3(nc.Breakdown.AvailabilityBoost),
						RecencyNovelty:    utils.Round3(nc.Breakdown.RecencyNovelty),
						AllergyRisk:       utils.Round3(nc.Breakdown.AllergyRisk),
					},
					Weights: s.weights,
				})
			}
			bundles = append(bundles, models.NotificationBundle{
				ID:          uuid.NewString(),
				UserID:      userID,
				Trigger:     trigger,
				GeneratedAt: now,
				Items:       items,
			})
			v.Append(models.RecencyRecord{FoodID: composed[0].Food.FoodID, TS: now})
		}
	})

	if len(bundles) > 0 {
		s.log.Infow("notifications generated", "user_id", userID, "count", len(bundles))
	}
	return bundles
}

// withinRateLimits enforces the daily cap (2 since the user's local midnight)
// and the 3-hour minimum gap from the most recent emission.
func (s *NotificationService) withinRateLimits(user *models.User, records []models.RecencyRecord, now time.Time) bool {
	loc, err := time.LoadLocation(user.TZ)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	today := 0
	for _, rec := range records {
		if !rec.TS.Before(midnight) {
			today++
		}
	}
	if today >= dailyNotificationCap {
		return false
	}
	if len(records) > 0 {
		last := records[len(records)-1]
		if now.Sub(last.TS) < minNotificationGap {
			return false
		}
	}
	return true
}
