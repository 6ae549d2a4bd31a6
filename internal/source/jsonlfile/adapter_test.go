package jsonlfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTempJSONL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp jsonl: %v", err)
	}
	return path
}

func TestRecords(t *testing.T) {
	path := writeTempJSONL(t, `{"Company Name": "Acme", "Application Deadline": "12-08-2025", "Applied": true}

{"Company Name": "Beta", "Completed": true}
`)

	records, err := NewAdapter(path).Records(context.Background())
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Company != "Acme" || !records[0].Applied {
		t.Errorf("acme = %+v", records[0])
	}
	if records[1].Company != "Beta" || !records[1].Completed {
		t.Errorf("beta = %+v", records[1])
	}
}

func TestRecordsMalformedLine(t *testing.T) {
	path := writeTempJSONL(t, `{"Company Name": "Acme"}
not json at all
`)

	if _, err := NewAdapter(path).Records(context.Background()); err == nil {
		t.Fatal("expected error for malformed line")
	}
}

func TestRecordsMissingFile(t *testing.T) {
	if _, err := NewAdapter("/nonexistent/legacy.jsonl").Records(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
