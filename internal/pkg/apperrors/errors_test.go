package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

// TestKindMapping checks every kind maps to its status and code.
func TestKindMapping(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
		code   string
	}{
		{KindNotFound, http.StatusNotFound, "NOT_FOUND"},
		{KindValidation, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{KindAuthentication, http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
		{KindAuthorization, http.StatusForbidden, "AUTHORIZATION_ERROR"},
		{KindFileUpload, http.StatusBadRequest, "FILE_UPLOAD_ERROR"},
		{KindExternalService, http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR"},
		{KindDatabase, http.StatusInternalServerError, "DATABASE_ERROR"},
	}

	for _, tc := range cases {
		e := &AppError{Kind: tc.kind, Detail: "x"}
		if e.Status() != tc.status {
			t.Errorf("kind %d: expected status %d, got %d", tc.kind, tc.status, e.Status())
		}
		if e.Code() != tc.code {
			t.Errorf("kind %d: expected code %s, got %s", tc.kind, tc.code, e.Code())
		}
	}
}

// TestUnwrap checks the cause is reachable through errors.Is.
func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabase("Failed to save", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !IsKind(wrapped, KindDatabase) {
		t.Error("Expected IsKind to see through wrapping")
	}
	if IsKind(wrapped, KindNotFound) {
		t.Error("IsKind matched the wrong kind")
	}
}

// TestNotFoundDetails checks the constructor records the lookup field.
func TestNotFoundDetails(t *testing.T) {
	err := NewNotFound("Wing", "slug", "technical")

	if err.Status() != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", err.Status())
	}
	if err.Details["resource"] != "Wing" {
		t.Errorf("Expected resource Wing, got %v", err.Details["resource"])
	}
	if err.Details["slug"] != "technical" {
		t.Errorf("Expected slug technical, got %v", err.Details["slug"])
	}
}

// TestFileUploadDetails checks the offending filename is carried.
func TestFileUploadDetails(t *testing.T) {
	err := NewFileUpload("File type not allowed", "malware.exe")
	if err.Details["filename"] != "malware.exe" {
		t.Errorf("Expected filename detail, got %v", err.Details)
	}
}
