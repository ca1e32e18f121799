package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/wallprints/catalog-backend/pkg/errors"
)

type samplePayload struct {
	SKU     string   `json:"sku" validate:"required"`
	Layouts []string `json:"layouts" validate:"required,min=1"`
}

func TestDecodeJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"sku":"ABC123","layouts":["Layout 3 Horizontal"]}`))
	var payload samplePayload
	if err := DecodeJSONBody(r, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.SKU != "ABC123" {
		t.Fatalf("sku = %q", payload.SKU)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"sku":"ABC123","layouts":["x"],"bogus":true}`))
	var payload samplePayload
	err := DecodeJSONBody(r, &payload)
	if err == nil {
		t.Fatal("expected an error for unknown fields")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestDecodeJSONBodyValidationDetailsUseJSONNames(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"layouts":[]}`))
	var payload samplePayload
	err := DecodeJSONBody(r, &payload)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected a typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("unexpected details %v", typed.Details())
	}
	if details["sku"] != "is required" {
		t.Fatalf("expected json field name in details, got %v", details)
	}
	if details["layouts"] == "" {
		t.Fatalf("expected layouts detail, got %v", details)
	}
}
