package mediastore

import (
	"context"
	"errors"
	"testing"
)

// TestIsAllowedImage checks the allowed image extension set, case
// insensitively.
func TestIsAllowedImage(t *testing.T) {
	allowed := []string{"a.jpg", "b.JPEG", "c.png", "d.gif", "e.WebP"}
	for _, name := range allowed {
		if !IsAllowedImage(name) {
			t.Errorf("Expected %s to be allowed", name)
		}
	}

	rejected := []string{"a.pdf", "b.exe", "c.jpg.sh", "noext", ""}
	for _, name := range rejected {
		if IsAllowedImage(name) {
			t.Errorf("Expected %s to be rejected", name)
		}
	}
}

// TestIsAllowedReport checks only PDFs pass.
func TestIsAllowedReport(t *testing.T) {
	if !IsAllowedReport("report.pdf") || !IsAllowedReport("REPORT.PDF") {
		t.Error("Expected PDF files to be allowed")
	}
	if IsAllowedReport("report.docx") || IsAllowedReport("report") {
		t.Error("Expected non-PDF files to be rejected")
	}
}

// TestTryDeleteSwallowsErrors verifies a failing delete is logged, not
// propagated, and empty IDs are skipped.
func TestTryDeleteSwallowsErrors(t *testing.T) {
	calls := 0
	failing := func(ctx context.Context, publicID string) error {
		calls++
		return errors.New("remote failure")
	}

	TryDelete(context.Background(), failing, "some-id")
	if calls != 1 {
		t.Errorf("Expected 1 delete attempt, got %d", calls)
	}

	TryDelete(context.Background(), failing, "")
	if calls != 1 {
		t.Errorf("Expected empty ID to be skipped, got %d calls", calls)
	}
}
