package services

import (
	"testing"

	"github.com/google/uuid"

	"yanails-backend/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) != 12 {
		t.Fatalf("expected 12 services, got %d", len(catalog))
	}
	if err := ValidateCatalog(catalog); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	// ids are stable across calls
	again := DefaultCatalog()
	for i := range catalog {
		if catalog[i].ID != again[i].ID {
			t.Fatalf("id for %q changed between calls", catalog[i].Title)
		}
	}
	if catalog[3].Description != "Servicio desde $15.000." {
		t.Errorf("description = %q", catalog[3].Description)
	}
}

func TestValidateCatalog(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name    string
		catalog []models.Service
	}{
		{"missing title", []models.Service{{ID: uuid.New(), Price: 100}}},
		{"zero price", []models.Service{{ID: uuid.New(), Title: "X"}}},
		{"negative price", []models.Service{{ID: uuid.New(), Title: "X", Price: -1}}},
		{"bad image url", []models.Service{{ID: uuid.New(), Title: "X", Price: 1, ImageURL: "not a url"}}},
		{"duplicate id", []models.Service{{ID: id, Title: "A", Price: 1}, {ID: id, Title: "B", Price: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateCatalog(tt.catalog); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestFormatCLP(t *testing.T) {
	tests := map[int64]string{
		5:       "5",
		500:     "500",
		5000:    "5.000",
		22000:   "22.000",
		1250000: "1.250.000",
	}
	for in, want := range tests {
		if got := formatCLP(in); got != want {
			t.Errorf("formatCLP(%d) = %q, want %q", in, got, want)
		}
	}
}
