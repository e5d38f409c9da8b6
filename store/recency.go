package store

import (
	"sync"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
)

// MaxRecencyRecords caps the per-user history at the most recent entries.
const MaxRecencyRecords = 20

// RecencyStore tracks, per user, the notifications actually emitted this
// process lifetime. It is injected into the orchestrator (never a hidden
// singleton) and is the only mutable shared state in the system.
//
// Rate-limit decisions must see a consistent view: "read records, decide,
// append" is an atomic unit per user, guarded by a per-user lock taken via
// WithUser. Cross-user calls do not contend.
type RecencyStore struct {
	mu     sync.Mutex
	byUser map[string]*userRecency
}

type userRecency struct {
	mu      sync.Mutex
	records []models.RecencyRecord
}

func NewRecencyStore() *RecencyStore {
	return &RecencyStore{byUser: make(map[string]*userRecency)}
}

// UserView is the handle passed to WithUser callbacks. Valid only inside the
// callback.
type UserView struct {
	u *userRecency
}

// Records returns the user's history oldest-first. The returned slice must
// not be retained past the callback.
func (v *UserView) Records() []models.RecencyRecord {
	return v.u.records
}

// Append records an emitted notification, truncating to the most recent
// MaxRecencyRecords entries.
func (v *UserView) Append(rec models.RecencyRecord) {
	v.u.records = append(v.u.records, rec)
	if n := len(v.u.records); n > MaxRecencyRecords {
		v.u.records = v.u.records[n-MaxRecencyRecords:]
	}
}

// WithUser runs fn while holding the user's lock, creating the per-user
// record lazily on first use.
func (s *RecencyStore) WithUser(userID string, fn func(*UserView)) {
	s.mu.Lock()
	u, ok := s.byUser[userID]
	if !ok {
		u = &userRecency{}
		s.byUser[userID] = u
	}
	s.mu.Unlock()

	u.mu.Lock()
	defer u.mu.Unlock()
	fn(&UserView{u: u})
}

// Snapshot returns a copy of the user's history for inspection endpoints.
func (s *RecencyStore) Snapshot(userID string) []models.RecencyRecord {
	var out []models.RecencyRecord
	s.WithUser(userID, func(v *UserView) {
		out = append(out, v.Records()...)
	})
	return out
}
