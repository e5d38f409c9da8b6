package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/AFNANSH552/nutrition-ai-agent/models"
)

func TestRecencyCap(t *testing.T) {
	s := NewRecencyStore()
	base := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	s.WithUser("u001", func(v *UserView) {
		for i := 0; i < MaxRecencyRecords+5; i++ {
			v.Append(models.RecencyRecord{FoodID: fmt.Sprintf("f%03d", i), TS: base.Add(time.Duration(i) * time.Minute)})
		}
	})

	records := s.Snapshot("u001")
	if len(records) != MaxRecencyRecords {
		t.Fatalf("want %d records after cap, got %d", MaxRecencyRecords, len(records))
	}
	// The oldest five fell off; the survivors stay oldest-first.
	if records[0].FoodID != "f005" {
		t.Fatalf("want oldest surviving record f005, got %s", records[0].FoodID)
	}
	if last := records[len(records)-1].FoodID; last != fmt.Sprintf("f%03d", MaxRecencyRecords+4) {
		t.Fatalf("want newest record last, got %s", last)
	}
}

func TestRecencyPerUserIsolation(t *testing.T) {
	s := NewRecencyStore()
	now := time.Now()

	s.WithUser("u001", func(v *UserView) {
		v.Append(models.RecencyRecord{FoodID: "f001", TS: now})
	})
	if got := s.Snapshot("u002"); len(got) != 0 {
		t.Fatalf("u002 must start empty, got %d records", len(got))
	}
	if got := s.Snapshot("u001"); len(got) != 1 {
		t.Fatalf("u001: want 1 record, got %d", len(got))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewRecencyStore()
	now := time.Now()
	s.WithUser("u001", func(v *UserView) {
		v.Append(models.RecencyRecord{FoodID: "f001", TS: now})
	})

	snap := s.Snapshot("u001")
	snap[0].FoodID = "mutated"
	if got := s.Snapshot("u001"); got[0].FoodID != "f001" {
		t.Fatalf("snapshot mutation leaked into the store: %s", got[0].FoodID)
	}
}

// Read-decide-append sequences from concurrent goroutines must serialize per
// user: every append lands, subject only to the cap.
func TestWithUserSerializesAppends(t *testing.T) {
	s := NewRecencyStore()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.WithUser("u001", func(v *UserView) {
				n := len(v.Records())
				v.Append(models.RecencyRecord{FoodID: fmt.Sprintf("f%03d", n), TS: now})
			})
		}(i)
	}
	wg.Wait()

	if got := len(s.Snapshot("u001")); got != MaxRecencyRecords {
		t.Fatalf("50 serialized appends: want cap of %d, got %d", MaxRecencyRecords, got)
	}
}
