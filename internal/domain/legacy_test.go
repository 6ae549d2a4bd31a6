package domain

import "testing"

func TestMigrateStatus(t *testing.T) {
	testCases := []struct {
		name      string
		applied   bool
		completed bool
		want      Status
	}{
		{name: "untouched", applied: false, completed: false, want: StatusOpen},
		{name: "applied only", applied: true, completed: false, want: StatusInProcess},
		{name: "completed only", applied: false, completed: true, want: StatusCompleted},
		{name: "completed wins over applied", applied: true, completed: true, want: StatusCompleted},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MigrateStatus(tc.applied, tc.completed); got != tc.want {
				t.Errorf("MigrateStatus(%v, %v) = %q, want %q", tc.applied, tc.completed, got, tc.want)
			}
		})
	}
}

func TestLegacyMigrate(t *testing.T) {
	legacy := LegacyRecord{
		Company:   "Acme",
		OfferType: "FTE",
		Role:      "Backend Engineer",
		Deadline:  "12/08/2025",
		DateAdded: "01-08-2025",
		Applied:   true,
	}

	got := legacy.Migrate()

	if got.Company != "Acme" || got.Role != "Backend Engineer" {
		t.Errorf("migrated record lost fields: %+v", got)
	}
	if got.Status != StatusInProcess {
		t.Errorf("Status = %q, want %q", got.Status, StatusInProcess)
	}
	if got.Stipend != NotSpecified || got.POCName != NotSpecified {
		t.Errorf("empty optional fields should default to %q, got stipend=%q poc=%q",
			NotSpecified, got.Stipend, got.POCName)
	}
	if got.Rounds == nil || len(got.Rounds) != 0 {
		t.Errorf("Rounds should migrate to an empty list, got %v", got.Rounds)
	}
	// deadline carries over raw; the importer re-normalizes it
	if got.Deadline != "12/08/2025" {
		t.Errorf("Deadline = %q, want raw pass-through", got.Deadline)
	}
}

func TestRoundListRoundTrip(t *testing.T) {
	rounds := RoundList{
		{Name: "Online Assessment", Completed: true},
		{Name: "Technical Interview", Completed: false},
	}

	v, err := rounds.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var scanned RoundList
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(scanned) != 2 || scanned[0].Name != "Online Assessment" || !scanned[0].Completed || scanned[1].Completed {
		t.Errorf("round trip mismatch: %+v", scanned)
	}
}

func TestRoundListNil(t *testing.T) {
	var rounds RoundList
	v, err := rounds.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != "[]" {
		t.Errorf("nil RoundList Value() = %v, want []", v)
	}

	var scanned RoundList
	if err := scanned.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if scanned == nil || len(scanned) != 0 {
		t.Errorf("Scan(nil) = %v, want empty list", scanned)
	}
}
