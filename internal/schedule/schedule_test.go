package schedule

import "testing"

func testRaces() []Race {
	return []Race{
		{Turn: 6, ID: "maiden", Name: "Maiden Stakes", Category: CategorySprint, DistanceM: 1200, FieldSize: 8},
		{Turn: 12, ID: "cup", Name: "Harbor Cup", Category: CategoryMile, DistanceM: 1600, FieldSize: 10},
		{Turn: 18, ID: "trial", Name: "Autumn Trial", Category: CategoryDistance, DistanceM: 2400, FieldSize: 12},
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(testRaces(), 24); err != nil {
		t.Fatalf("Valid schedule rejected: %v", err)
	}

	outOfOrder := testRaces()
	outOfOrder[1].Turn = 6 // same turn as the first race
	if _, err := New(outOfOrder, 24); err == nil {
		t.Error("Expected error for non-increasing turns")
	}

	pastEnd := testRaces()
	pastEnd[2].Turn = 30
	if _, err := New(pastEnd, 24); err == nil {
		t.Error("Expected error for race past career end")
	}

	noID := testRaces()
	noID[0].ID = ""
	if _, err := New(noID, 24); err == nil {
		t.Error("Expected error for race without id")
	}

	badCategory := testRaces()
	badCategory[0].Category = "marathon"
	if _, err := New(badCategory, 24); err == nil {
		t.Error("Expected error for unknown category")
	}

	tinyField := testRaces()
	tinyField[0].FieldSize = 1
	if _, err := New(tinyField, 24); err == nil {
		t.Error("Expected error for field size below 2")
	}
}

func TestRaceAt(t *testing.T) {
	s, err := New(testRaces(), 24)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	r, ok := s.RaceAt(12)
	if !ok || r.ID != "cup" {
		t.Errorf("Expected cup at turn 12, got %v/%v", r.ID, ok)
	}
	if _, ok := s.RaceAt(13); ok {
		t.Error("Expected no race at turn 13")
	}
	// Idempotent - asking again gives the same answer
	r2, ok2 := s.RaceAt(12)
	if !ok2 || r2.ID != r.ID {
		t.Error("RaceAt must be a pure query")
	}
}

func TestCompletionTracking(t *testing.T) {
	s, err := New(testRaces(), 24)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if s.Total() != 3 || s.Completed() != 0 || s.Remaining() != 3 {
		t.Fatalf("Fresh schedule counts wrong: %d/%d/%d", s.Total(), s.Completed(), s.Remaining())
	}

	for i := 1; i <= 3; i++ {
		if err := s.MarkCompleted(); err != nil {
			t.Fatalf("MarkCompleted() #%d failed: %v", i, err)
		}
	}
	if !s.AllCompleted() {
		t.Error("Expected all races completed")
	}
	if err := s.MarkCompleted(); err == nil {
		t.Error("Expected error marking past the schedule")
	}
}

func TestRestoreCompleted(t *testing.T) {
	s, _ := New(testRaces(), 24)

	if err := s.RestoreCompleted(2); err != nil {
		t.Fatalf("RestoreCompleted(2) failed: %v", err)
	}
	if s.Remaining() != 1 {
		t.Errorf("Expected 1 remaining, got %d", s.Remaining())
	}
	if err := s.RestoreCompleted(4); err == nil {
		t.Error("Expected error restoring beyond schedule length")
	}
	if err := s.RestoreCompleted(-1); err == nil {
		t.Error("Expected error restoring negative count")
	}
}

func TestRacesReturnsCopy(t *testing.T) {
	s, _ := New(testRaces(), 24)
	races := s.Races()
	races[0].ID = "mutated"

	again, _ := s.RaceAt(6)
	if again.ID != "maiden" {
		t.Error("Mutating the returned slice must not affect the schedule")
	}
}
