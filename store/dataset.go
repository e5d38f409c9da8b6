// Package store owns the loaded, read-only domain data and the per-user
// recency state. Everything here is built once at startup; the scoring path
// never touches the filesystem.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
)

// File names inside the data directory.
const (
	UsersFile     = "users.json"
	FoodsFile     = "foods.json"
	LinksFile     = "condition_nutrients.csv"
	ActivityFile  = "user_activity.csv"
	TemplatesFile = "message_templates.json"
	FactsFile     = "facts.json"
)

// Dataset holds all externally loaded records, validated and indexed.
// Read-only after Load returns.
type Dataset struct {
	Users     map[string]*models.User
	UserIDs   []string // sorted
	Foods     map[string]*models.Food
	FoodOrder []string // catalog iteration order, as listed in foods.json
	Links     []models.ConditionNutrientLink
	Index     *ConditionIndex
	Templates map[string]models.MessageTemplate
	Facts     map[string]string
	Activity  []models.ActivityEvent // sorted by timestamp ascending
}

// Load reads and validates all data files from dir. Any malformed record
// fails the whole load; type problems must never reach scoring logic.
func Load(dir string) (*Dataset, error) {
	ds := &Dataset{
		Users:     make(map[string]*models.User),
		Foods:     make(map[string]*models.Food),
		Templates: make(map[string]models.MessageTemplate),
		Facts:     make(map[string]string),
	}

	if err := ds.loadUsers(filepath.Join(dir, UsersFile)); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if err := ds.loadFoods(filepath.Join(dir, FoodsFile)); err != nil {
		return nil, fmt.Errorf("load foods: %w", err)
	}
	if err := ds.loadLinks(filepath.Join(dir, LinksFile)); err != nil {
		return nil, fmt.Errorf("load condition nutrients: %w", err)
	}
	if err := ds.loadActivity(filepath.Join(dir, ActivityFile)); err != nil {
		return nil, fmt.Errorf("load activity log: %w", err)
	}
	if err := ds.loadTemplates(filepath.Join(dir, TemplatesFile)); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if err := ds.loadFacts(filepath.Join(dir, FactsFile)); err != nil {
		return nil, fmt.Errorf("load facts: %w", err)
	}

	ds.Index = BuildConditionIndex(ds.Links)
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// NewDataset builds a validated dataset from in-memory records. Used by tests
// and anywhere data arrives without the file layer.
func NewDataset(users []models.User, foods []models.Food, links []models.ConditionNutrientLink,
	templates []models.MessageTemplate, facts map[string]string, activity []models.ActivityEvent) (*Dataset, error) {

	ds := &Dataset{
		Users:     make(map[string]*models.User, len(users)),
		Foods:     make(map[string]*models.Food, len(foods)),
		Templates: make(map[string]models.MessageTemplate, len(templates)),
		Facts:     facts,
		Links:     links,
	}
	if ds.Facts == nil {
		ds.Facts = make(map[string]string)
	}
	for i := range users {
		u := users[i]
		if err := validateUser(&u); err != nil {
			return nil, err
		}
		ds.Users[u.UserID] = &u
		ds.UserIDs = append(ds.UserIDs, u.UserID)
	}
	sort.Strings(ds.UserIDs)
	for i := range foods {
		f := foods[i]
		if err := validateFood(&f, ds.Foods); err != nil {
			return nil, err
		}
		ds.Foods[f.FoodID] = &f
		ds.FoodOrder = append(ds.FoodOrder, f.FoodID)
	}
	for _, l := range links {
		if err := validateLink(l); err != nil {
			return nil, err
		}
	}
	for _, t := range templates {
		if t.Text == "" {
			return nil, fmt.Errorf("template %q: empty text", t.TemplateID)
		}
		ds.Templates[t.TemplateID] = t
	}
	ds.Activity = append(ds.Activity, activity...)
	sort.SliceStable(ds.Activity, func(i, j int) bool { return ds.Activity[i].TS.Before(ds.Activity[j].TS) })
	ds.Index = BuildConditionIndex(ds.Links)
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// RequiredTemplates are every template id reachable from the trigger mapping.
// A missing one is a configuration-integrity error and must fail at startup,
// not at request time.
var RequiredTemplates = []string{"pre_meal_basic", "post_workout", "science_fact", "condition_reminder"}

// Validate checks cross-record integrity after loading.
func (d *Dataset) Validate() error {
	for _, id := range RequiredTemplates {
		if _, ok := d.Templates[id]; !ok {
			return fmt.Errorf("configuration error: required template %q missing from template table", id)
		}
	}
	return nil
}

// Events returns the user's activity entries of the given kind with
// timestamp >= since, in chronological order.
func (d *Dataset) Events(userID, kind string, since time.Time) []models.ActivityEvent {
	var out []models.ActivityEvent
	for _, ev := range d.Activity {
		if ev.UserID == userID && ev.Event == kind && !ev.TS.Before(since) {
			out = append(out, ev)
		}
	}
	return out
}

// ConsumedNutrients sums nutrient amounts across every food the user consumed
// at or after since. Log entries pointing at unknown foods contribute nothing.
func (d *Dataset) ConsumedNutrients(userID string, since time.Time) map[string]float64 {
	totals := make(map[string]float64)
	for _, ev := range d.Events(userID, models.EventConsumed, since) {
		food, ok := d.Foods[ev.FoodID]
		if !ok {
			continue
		}
		for nutrient, amount := range food.Nutrients {
			totals[nutrient] += amount
		}
	}
	return totals
}

// ---------------------------------------------------------------------------
// File loading
// ---------------------------------------------------------------------------

func (d *Dataset) loadUsers(path string) error {
	var users []models.User
	if err := readJSON(path, &users); err != nil {
		return err
	}
	for i := range users {
		u := users[i]
		if err := validateUser(&u); err != nil {
			return err
		}
		d.Users[u.UserID] = &u
		d.UserIDs = append(d.UserIDs, u.UserID)
	}
	sort.Strings(d.UserIDs)
	return nil
}

func (d *Dataset) loadFoods(path string) error {
	var foods []models.Food
	if err := readJSON(path, &foods); err != nil {
		return err
	}
	for i := range foods {
		f := foods[i]
		if err := validateFood(&f, d.Foods); err != nil {
			return err
		}
		d.Foods[f.FoodID] = &f
		d.FoodOrder = append(d.FoodOrder, f.FoodID)
	}
	return nil
}

func (d *Dataset) loadLinks(path string) error {
	rows, err := readCSV(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		weight, err := strconv.ParseFloat(row["weight"], 64)
		if err != nil {
			return fmt.Errorf("condition %q nutrient %q: bad weight %q", row["condition"], row["nutrient"], row["weight"])
		}
		link := models.ConditionNutrientLink{
			Condition:  row["condition"],
			Nutrient:   row["nutrient"],
			Weight:     weight,
			References: row["references"],
		}
		if err := validateLink(link); err != nil {
			return err
		}
		d.Links = append(d.Links, link)
	}
	return nil
}

func (d *Dataset) loadActivity(path string) error {
	rows, err := readCSV(path)
	if err != nil {
		return err
	}
	for i, row := range rows {
		ts, err := parseTimestamp(row["ts"])
		if err != nil {
			return fmt.Errorf("activity row %d: bad timestamp %q", i+1, row["ts"])
		}
		kind := row["event"]
		switch kind {
		case models.EventConsumed, models.EventSkipped, models.EventWorkedOut:
		default:
			return fmt.Errorf("activity row %d: unknown event kind %q", i+1, kind)
		}
		ev := models.ActivityEvent{
			UserID: row["user_id"],
			TS:     ts,
			Event:  kind,
			FoodID: row["food_id"],
		}
		if dur := row["duration_min"]; dur != "" {
			n, err := strconv.ParseFloat(dur, 64)
			if err != nil {
				return fmt.Errorf("activity row %d: bad duration %q", i+1, dur)
			}
			ev.DurationMin = int(n)
		}
		d.Activity = append(d.Activity, ev)
	}
	sort.SliceStable(d.Activity, func(i, j int) bool { return d.Activity[i].TS.Before(d.Activity[j].TS) })
	return nil
}

func (d *Dataset) loadTemplates(path string) error {
	var templates []models.MessageTemplate
	if err := readJSON(path, &templates); err != nil {
		return err
	}
	for _, t := range templates {
		if t.Text == "" {
			return fmt.Errorf("template %q: empty text", t.TemplateID)
		}
		d.Templates[t.TemplateID] = t
	}
	return nil
}

func (d *Dataset) loadFacts(path string) error {
	return readJSON(path, &d.Facts)
}

// ---------------------------------------------------------------------------
// Record validation — fail fast at the loader boundary
// ---------------------------------------------------------------------------

func validateUser(u *models.User) error {
	if u.UserID == "" {
		return fmt.Errorf("user with empty user_id")
	}
	switch u.DietPref {
	case models.DietVeg, models.DietNonVeg, models.DietEgg:
	default:
		return fmt.Errorf("user %s: unknown diet_pref %q", u.UserID, u.DietPref)
	}
	if _, err := time.LoadLocation(u.TZ); err != nil {
		return fmt.Errorf("user %s: invalid timezone %q", u.UserID, u.TZ)
	}
	for meal, hhmm := range u.UsualMealTimes {
		if _, err := time.Parse("15:04", hhmm); err != nil {
			return fmt.Errorf("user %s: meal %q time %q is not HH:MM", u.UserID, meal, hhmm)
		}
	}
	return nil
}

func validateFood(f *models.Food, existing map[string]*models.Food) error {
	if f.FoodID == "" {
		return fmt.Errorf("food with empty food_id")
	}
	if _, dup := existing[f.FoodID]; dup {
		return fmt.Errorf("duplicate food_id %q", f.FoodID)
	}
	for nutrient, amount := range f.Nutrients {
		if amount < 0 {
			return fmt.Errorf("food %s: negative amount for nutrient %q", f.FoodID, nutrient)
		}
	}
	return nil
}

func validateLink(l models.ConditionNutrientLink) error {
	if l.Condition == "" || l.Nutrient == "" {
		return fmt.Errorf("condition-nutrient row with empty condition or nutrient")
	}
	if l.Weight < 0 {
		return fmt.Errorf("condition %q nutrient %q: negative weight", l.Condition, l.Nutrient)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Small file helpers
// ---------------------------------------------------------------------------

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// readCSV returns one map per data row, keyed by the header row.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var rows []map[string]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseTimestamp accepts RFC3339 and the naive ISO form the mock generator
// emits; naive timestamps are taken as UTC.
func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return ts.UTC(), nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
