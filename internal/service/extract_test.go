package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mkraj/jobtrack/internal/domain"
)

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string // expected company name
		wantErr bool
	}{
		{
			name: "plain json",
			raw:  `{"company_name": "Acme", "role": "SDE Intern"}`,
			want: "Acme",
		},
		{
			name: "json fenced",
			raw:  "```json\n{\"company_name\": \"Acme\"}\n```",
			want: "Acme",
		},
		{
			name: "bare fence",
			raw:  "```\n{\"company_name\": \"Acme\"}\n```",
			want: "Acme",
		},
		{
			name: "surrounding whitespace",
			raw:  "\n  {\"company_name\": \"Acme\"}  \n",
			want: "Acme",
		},
		{
			name:    "not json",
			raw:     "Sorry, I cannot extract that.",
			wantErr: true,
		},
		{
			name:    "missing company",
			raw:     `{"role": "SDE Intern"}`,
			wantErr: true,
		},
		{
			name:    "blank company",
			raw:     `{"company_name": "   "}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := parseExtraction(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseExtraction(%q) expected error, got %+v", tt.raw, ext)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseExtraction(%q) unexpected error: %v", tt.raw, err)
			}
			if ext.CompanyName != tt.want {
				t.Errorf("company = %q, want %q", ext.CompanyName, tt.want)
			}
		})
	}
}

func TestParseExtractionNoCompanyError(t *testing.T) {
	_, err := parseExtraction(`{"role": "SDE"}`)
	if !errors.Is(err, ErrNoCompany) {
		t.Errorf("expected ErrNoCompany, got %v", err)
	}
}

func TestParseExtractionDefaults(t *testing.T) {
	ext, err := parseExtraction(`{"company_name": "Acme", "stipend": "50k/month"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ext.Stipend != "50k/month" {
		t.Errorf("stipend = %q, want %q", ext.Stipend, "50k/month")
	}
	for field, got := range map[string]string{
		"ctc":       ext.CTC,
		"poc_name":  ext.POCName,
		"poc_phone": ext.POCPhone,
	} {
		if got != domain.NotSpecified {
			t.Errorf("%s = %q, want %q", field, got, domain.NotSpecified)
		}
	}
}

func TestExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"message": {"content": "{\"company_name\": \"Acme\", \"application_deadline\": \"12-08-2025\"}"}}]
		}`))
	}))
	defer srv.Close()

	svc := NewExtractionService(&ExtractionConfig{
		Model:   "test-model",
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})

	ext, err := svc.Extract(context.Background(), "Acme is hiring, apply by 12-08-2025")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if ext.CompanyName != "Acme" {
		t.Errorf("company = %q, want Acme", ext.CompanyName)
	}
	if ext.ApplicationDeadline != "12-08-2025" {
		t.Errorf("deadline = %q, want 12-08-2025", ext.ApplicationDeadline)
	}
}

func TestExtractAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key", "type": "auth"}}`))
	}))
	defer srv.Close()

	svc := NewExtractionService(&ExtractionConfig{
		Model:   "test-model",
		APIKey:  "bad-key",
		BaseURL: srv.URL,
	})

	_, err := svc.Extract(context.Background(), "some posting")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error %q should carry the API message", err)
	}
}

func TestExtractEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	svc := NewExtractionService(&ExtractionConfig{
		Model:   "test-model",
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})

	if _, err := svc.Extract(context.Background(), "some posting"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
