package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

func TestRecords(t *testing.T) {
	path := writeTempCSV(t, `Company Name,Offer Type,Stipend,Application Deadline,Applied,Completed
Acme,Internship,50k/month,12-08-2025,TRUE,FALSE
Beta,FTE,,20/08/2025,,x
`)

	a := NewAdapter(path)
	records, err := a.Records(context.Background())
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	acme := records[0]
	if acme.Company != "Acme" || acme.Stipend != "50k/month" || acme.Deadline != "12-08-2025" {
		t.Errorf("acme = %+v", acme)
	}
	if !acme.Applied || acme.Completed {
		t.Errorf("acme flags = applied %v, completed %v", acme.Applied, acme.Completed)
	}

	beta := records[1]
	if beta.Applied {
		t.Error("empty cell should parse as false")
	}
	if !beta.Completed {
		t.Error("x should parse as true")
	}
}

func TestRecordsHandlesRaggedRows(t *testing.T) {
	path := writeTempCSV(t, `Company Name,Offer Type,POC Phone
Acme,Internship
Beta,FTE,12345,extra
`)

	records, err := NewAdapter(path).Records(context.Background())
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].POCPhone != "" {
		t.Errorf("missing trailing column should read empty, got %q", records[0].POCPhone)
	}
	if records[1].POCPhone != "12345" {
		t.Errorf("poc phone = %q", records[1].POCPhone)
	}
}

func TestRecordsRejectsMissingCompanyColumn(t *testing.T) {
	path := writeTempCSV(t, "Role,Stipend\nSDE,50k\n")

	if _, err := NewAdapter(path).Records(context.Background()); err == nil {
		t.Fatal("expected error for csv without Company Name column")
	}
}

func TestRecordsMissingFile(t *testing.T) {
	if _, err := NewAdapter("/nonexistent/legacy.csv").Records(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
