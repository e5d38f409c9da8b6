package services

import (
	"strings"
	"testing"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
	"github.com/AFNANSH552/nutrition-ai-agent/utils"
)

func newComposer(t *testing.T) (*Composer, *store.Dataset) {
	t.Helper()
	ds := newTestDataset(t, nil)
	return NewComposer(ds), ds
}

func TestPrimaryCondition(t *testing.T) {
	c, ds := newComposer(t)

	// Almonds for u001: vitamin_e and zinc contribute, in link row order.
	condition, nutrients := c.primaryCondition(ds.Foods["f001"], ds.Users["u001"])
	if condition != "Glowing skin" {
		t.Fatalf("want Glowing skin got %q", condition)
	}
	if len(nutrients) != 2 || nutrients[0] != "vitamin_e" || nutrients[1] != "zinc" {
		t.Fatalf("want [vitamin_e zinc] got %v", nutrients)
	}

	// Salmon for u002: only Muscle pain overlaps (protein, omega3).
	condition, nutrients = c.primaryCondition(ds.Foods["f007"], ds.Users["u002"])
	if condition != "Muscle pain" {
		t.Fatalf("want Muscle pain got %q", condition)
	}
	if len(nutrients) != 2 || nutrients[0] != "protein" || nutrients[1] != "omega3" {
		t.Fatalf("want [protein omega3] got %v", nutrients)
	}

	// Yogurt for u001: no overlap at all.
	condition, nutrients = c.primaryCondition(ds.Foods["f002"], ds.Users["u001"])
	if condition != "" || nutrients != nil {
		t.Fatalf("no overlap: want empty condition, got %q %v", condition, nutrients)
	}
}

func TestBenefitText(t *testing.T) {
	cases := []struct {
		nutrients []string
		condition string
		want      string
	}{
		{nil, "Glowing skin", "supports glowing skin"},
		{[]string{"iron"}, "Glowing skin", "iron boost"},
		{[]string{"vitamin_e", "zinc"}, "Glowing skin", "Vitamin E + Zinc boost"},
		{[]string{"vitamin_e", "zinc", "omega3"}, "Glowing skin", "Vitamin E + Zinc boost"},
		{[]string{"biotin"}, "Hair fall", "biotin boost"}, // unmapped name passes through
	}
	for _, tc := range cases {
		if got := benefitText(tc.nutrients, tc.condition); got != tc.want {
			t.Fatalf("benefitText(%v): want %q got %q", tc.nutrients, tc.want, got)
		}
	}
}

func TestSelectTemplate(t *testing.T) {
	c, _ := newComposer(t)
	cases := map[string]string{
		"pre_breakfast":          "pre_meal_basic",
		"pre_lunch":              "pre_meal_basic",
		"pre_dinner":             "pre_meal_basic",
		"post_activity":          "post_workout",
		"social_viral":           "science_fact",
		"condition_glowing_skin": "condition_reminder",
		"condition_muscle_pain":  "condition_reminder",
		"something_else":         "pre_meal_basic",
	}
	for trigger, want := range cases {
		if got := c.selectTemplate(trigger); got != want {
			t.Fatalf("selectTemplate(%q): want %q got %q", trigger, want, got)
		}
	}
}

func TestWhyNowFact(t *testing.T) {
	c, ds := newComposer(t)

	if got := c.whyNowFact("post_activity"); got != ds.Facts["post_activity"] {
		t.Fatalf("post_activity fact: want %q got %q", ds.Facts["post_activity"], got)
	}
	if got := c.whyNowFact("condition_glowing_skin"); got != ds.Facts["evening_repair"] {
		t.Fatalf("condition trigger: want evening_repair fact, got %q", got)
	}
	if got := c.whyNowFact("something_else"); got != ds.Facts["pre_meal"] {
		t.Fatalf("unknown trigger: want pre_meal fact, got %q", got)
	}

	// An empty fact table falls back to the generic sentence.
	bare, err := store.NewDataset(testUsers(), testFoods(), testLinks(), testTemplates(), map[string]string{}, nil)
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	if got := NewComposer(bare).whyNowFact("post_activity"); got != fallbackFact {
		t.Fatalf("missing fact key: want fallback, got %q", got)
	}
}

func TestBuildCTA(t *testing.T) {
	food := &models.Food{FoodID: "f001"}
	cta := buildCTA(food, "Glowing skin")
	if cta.Label != "Learn more" {
		t.Fatalf("want label %q got %q", "Learn more", cta.Label)
	}
	want := "app://explore?food=f001&condition=Glowing%20skin"
	if cta.DeepLink != want {
		t.Fatalf("want deep link %q got %q", want, cta.DeepLink)
	}
}

func TestFillTemplateSubstitution(t *testing.T) {
	food := &models.Food{FoodID: "f003", Name: "Spinach Salad"}
	got := fillTemplate("{food}: {benefit} for {condition}. {why_now}. {cta}",
		food, "iron boost", "Glowing skin", "cells renew overnight")
	want := "Spinach Salad: iron boost for glowing skin. cells renew overnight. Try spinach salad"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
	if strings.ContainsAny(got, "{}") {
		t.Fatalf("unfilled placeholder left in %q", got)
	}
}

func TestFillTemplateLengthCeiling(t *testing.T) {
	food := &models.Food{FoodID: "f001", Name: "Soaked Almonds"}
	long := strings.Repeat("{why_now} ", 10)
	got := fillTemplate(long, food, "Vitamin E boost", "Glowing skin",
		strings.Repeat("antioxidant support ", 5))
	if n := len([]rune(got)); n > utils.MaxMessageLen {
		t.Fatalf("composed message is %d runes, ceiling is %d", n, utils.MaxMessageLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated message must end with ellipsis, got %q", got)
	}
}

func TestComposeTopN(t *testing.T) {
	ds := newTestDataset(t, nil)
	c := NewComposer(ds)
	r := NewRanker(ds, models.DefaultWeights)
	u002 := ds.Users["u002"]

	candidates := NewCandidateFilter(ds).Filter(u002, testNow, "pre_lunch")
	ranked := r.Rank(candidates, u002, testNow, "pre_lunch", nil)

	composed := c.Compose(ranked, u002, "pre_lunch", 1)
	if len(composed) != 1 {
		t.Fatalf("top_n=1: want 1 composed item, got %d", len(composed))
	}
	if composed[0].Food.FoodID != ranked[0].Food.FoodID {
		t.Fatalf("composed item must be the top-ranked food")
	}
	if composed[0].Message == "" {
		t.Fatalf("composed item has empty message")
	}
	if len([]rune(composed[0].Message)) > utils.MaxMessageLen {
		t.Fatalf("message exceeds %d chars: %q", utils.MaxMessageLen, composed[0].Message)
	}

	all := c.Compose(ranked, u002, "pre_lunch", len(ranked)+5)
	if len(all) != len(ranked) {
		t.Fatalf("oversized top_n: want %d items, got %d", len(ranked), len(all))
	}
	for i := range all {
		if all[i].Food.FoodID != ranked[i].Food.FoodID {
			t.Fatalf("compose must preserve rank order at %d", i)
		}
	}
}
