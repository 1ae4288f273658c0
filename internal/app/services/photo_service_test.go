package services

import (
	"context"
	"strings"
	"testing"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
)

func newPhotoServiceForTest(wings *fakeWingRepo, photos *fakePhotoStore, media *fakeMedia) PhotoService {
	return NewPhotoService(photos, wings, media, "anvaya")
}

func testWings() *fakeWingRepo {
	return &fakeWingRepo{wings: []*models.Wing{
		{ID: 1, Slug: "technical", Name: "Technical Wing"},
		{ID: 2, Slug: "cultural", Name: "Cultural Wing"},
	}}
}

func imageFiles(names ...string) []FileInput {
	files := make([]FileInput, 0, len(names))
	for _, name := range names {
		files = append(files, FileInput{Filename: name, Reader: strings.NewReader("data")})
	}
	return files
}

// TestUploadCreatesOnePhotoPerFile verifies N uploads produce N rows with
// distinct IDs under the wing's folder.
func TestUploadCreatesOnePhotoPerFile(t *testing.T) {
	store := newFakePhotoStore()
	media := newFakeMedia()
	svc := newPhotoServiceForTest(testWings(), store, media)

	photos, err := svc.Upload(context.Background(), 1, imageFiles("a.jpg", "b.png", "c.webp"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if len(photos) != 3 {
		t.Fatalf("Expected 3 photos, got %d", len(photos))
	}

	seen := map[int64]bool{}
	for _, p := range photos {
		if seen[p.ID] {
			t.Errorf("Duplicate photo ID %d", p.ID)
		}
		seen[p.ID] = true
		if p.WingID != 1 {
			t.Errorf("Expected wing ID 1, got %d", p.WingID)
		}
	}

	if len(media.imageFolders) != 3 {
		t.Fatalf("Expected 3 upload calls, got %d", len(media.imageFolders))
	}
	for _, folder := range media.imageFolders {
		if folder != "anvaya/technical" {
			t.Errorf("Expected folder anvaya/technical, got %s", folder)
		}
	}

	if len(store.bulkCalls) != 1 {
		t.Fatalf("Expected 1 bulk insert, got %d", len(store.bulkCalls))
	}
}

// TestUploadRejectsBadExtensionBeforeAnyUpload verifies one bad file fails
// the whole batch before any upload call is made.
func TestUploadRejectsBadExtensionBeforeAnyUpload(t *testing.T) {
	store := newFakePhotoStore()
	media := newFakeMedia()
	svc := newPhotoServiceForTest(testWings(), store, media)

	_, err := svc.Upload(context.Background(), 1, imageFiles("a.jpg", "malware.exe", "b.png"))
	if err == nil {
		t.Fatal("Expected error for disallowed extension")
	}
	if !apperrors.IsKind(err, apperrors.KindFileUpload) {
		t.Fatalf("Expected FileUpload kind, got %v", err)
	}
	if len(media.imageFolders) != 0 {
		t.Errorf("Expected no upload calls, got %d", len(media.imageFolders))
	}
	if len(store.bulkCalls) != 0 {
		t.Errorf("Expected no insert calls, got %d", len(store.bulkCalls))
	}
}

// TestUploadMissingWing verifies an unknown wing ID fails with NotFound and
// writes nothing.
func TestUploadMissingWing(t *testing.T) {
	store := newFakePhotoStore()
	media := newFakeMedia()
	svc := newPhotoServiceForTest(testWings(), store, media)

	_, err := svc.Upload(context.Background(), 99, imageFiles("a.jpg"))
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("Expected NotFound kind, got %v", err)
	}
	if len(media.imageFolders) != 0 || len(store.bulkCalls) != 0 {
		t.Error("Expected no uploads or inserts for missing wing")
	}
}

// TestUploadHostFailurePersistsNothing verifies a mid-batch host failure
// aborts with ExternalService and no rows are written.
func TestUploadHostFailurePersistsNothing(t *testing.T) {
	store := newFakePhotoStore()
	media := newFakeMedia()
	media.failImageAfter = 1
	svc := newPhotoServiceForTest(testWings(), store, media)

	_, err := svc.Upload(context.Background(), 1, imageFiles("a.jpg", "b.jpg"))
	if !apperrors.IsKind(err, apperrors.KindExternalService) {
		t.Fatalf("Expected ExternalService kind, got %v", err)
	}
	if len(store.bulkCalls) != 0 {
		t.Errorf("Expected no insert calls, got %d", len(store.bulkCalls))
	}
	// The asset uploaded before the failure is cleaned up.
	if len(media.deletedImages) != 1 {
		t.Errorf("Expected 1 cleanup delete, got %d", len(media.deletedImages))
	}
}

// TestDeletePhotoDespiteRemoteFailure verifies the row is removed even when
// the remote asset delete fails.
func TestDeletePhotoDespiteRemoteFailure(t *testing.T) {
	store := newFakePhotoStore()
	store.photos[7] = &models.Photo{ID: 7, WingID: 1, CloudinaryID: "anvaya/technical/img-7"}
	media := newFakeMedia()
	media.deleteErr = context.DeadlineExceeded
	svc := newPhotoServiceForTest(testWings(), store, media)

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(store.deletedIDs) != 1 || store.deletedIDs[0] != 7 {
		t.Errorf("Expected row delete for ID 7, got %v", store.deletedIDs)
	}
}

// TestDeletePhotoNotFound verifies deleting an unknown photo reports NotFound.
func TestDeletePhotoNotFound(t *testing.T) {
	svc := newPhotoServiceForTest(testWings(), newFakePhotoStore(), newFakeMedia())

	err := svc.Delete(context.Background(), 42)
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("Expected NotFound kind, got %v", err)
	}
}

// TestListByWingUnknownSlug verifies listing photos of an unknown wing
// reports NotFound.
func TestListByWingUnknownSlug(t *testing.T) {
	svc := newPhotoServiceForTest(testWings(), newFakePhotoStore(), newFakeMedia())

	_, err := svc.ListByWing(context.Background(), "nope", 100, 0)
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("Expected NotFound kind, got %v", err)
	}
}
