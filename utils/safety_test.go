package utils

import (
	"testing"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
)

var (
	paneer = &models.Food{FoodID: "f1", Name: "Paneer", IsVeg: true, Ingredients: []string{"paneer"}, Tags: []string{"dairy"}}
	omelet = &models.Food{FoodID: "f2", Name: "Omelet", IsVeg: false, Ingredients: []string{"eggs", "onion"}}
	fish   = &models.Food{FoodID: "f3", Name: "Fish Curry", IsVeg: false, Ingredients: []string{"fish"}, Tags: []string{"seafood"}}
)

func TestDietCompatible(t *testing.T) {
	cases := []struct {
		diet string
		food *models.Food
		want bool
	}{
		{models.DietVeg, paneer, true},
		{models.DietVeg, omelet, false},
		{models.DietVeg, fish, false},
		{models.DietEgg, paneer, true},
		{models.DietEgg, omelet, true},
		{models.DietEgg, fish, false},
		{models.DietNonVeg, paneer, true},
		{models.DietNonVeg, omelet, true},
		{models.DietNonVeg, fish, true},
	}
	for _, tc := range cases {
		user := &models.User{UserID: "u", DietPref: tc.diet}
		if got := DietCompatible(user, tc.food); got != tc.want {
			t.Fatalf("%s + %s: want %v got %v", tc.diet, tc.food.Name, tc.want, got)
		}
	}
}

func TestAllergens(t *testing.T) {
	nutty := &models.Food{
		FoodID: "f4", Name: "Trail Mix", IsVeg: true,
		Ingredients: []string{"nuts", "raisins"},
		Tags:        []string{"nuts", "snack"},
	}

	user := &models.User{UserID: "u", Allergies: []string{"nuts", "dairy"}}
	got := Allergens(user, nutty)
	// "nuts" matches both a tag and an ingredient but is reported once.
	if len(got) != 1 || got[0] != "nuts" {
		t.Fatalf("want [nuts], got %v", got)
	}
	if !HasAllergyRisk(user, nutty) {
		t.Fatalf("want allergy risk for nuts")
	}

	clean := &models.User{UserID: "u2"}
	if HasAllergyRisk(clean, nutty) {
		t.Fatalf("no allergies: want no risk")
	}
	if got := Allergens(user, paneer); len(got) != 1 || got[0] != "dairy" {
		t.Fatalf("want [dairy], got %v", got)
	}
}
