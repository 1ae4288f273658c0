package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/app/repositories"
	"github.com/anvaya-club/backend/internal/pkg/mediastore"
)

// fakeWingRepo serves wings from memory.
type fakeWingRepo struct {
	wings []*models.Wing
}

func (f *fakeWingRepo) GetAll(ctx context.Context) ([]*models.Wing, error) {
	return f.wings, nil
}

func (f *fakeWingRepo) GetByID(ctx context.Context, id int64) (*models.Wing, error) {
	for _, w := range f.wings {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeWingRepo) GetBySlug(ctx context.Context, slug string) (*models.Wing, error) {
	for _, w := range f.wings {
		if w.Slug == slug {
			return w, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeWingRepo) GetWithRelations(ctx context.Context, slug string) (*models.WingWithRelations, error) {
	wing, err := f.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &models.WingWithRelations{Wing: *wing}, nil
}

// fakeActivityStore records mutations for assertion.
type fakeActivityStore struct {
	activities map[int64]*models.Activity
	withWings  []*models.ActivityWithWing

	created      []*models.Activity
	updateCalls  []models.ActivityUpdate
	deletedIDs   []int64
	deleteResult bool
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{
		activities:   map[int64]*models.Activity{},
		deleteResult: true,
	}
}

func (f *fakeActivityStore) GetByWing(ctx context.Context, wingID int64, limit int) ([]*models.Activity, error) {
	var out []*models.Activity
	for _, a := range f.activities {
		if a.WingID == wingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivityStore) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return a, nil
}

func (f *fakeActivityStore) Create(ctx context.Context, activity *models.Activity) error {
	activity.ID = int64(len(f.created) + 1)
	f.created = append(f.created, activity)
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityStore) Update(ctx context.Context, id int64, update models.ActivityUpdate) (*models.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	f.updateCalls = append(f.updateCalls, update)

	updated := *a
	if update.Title != nil {
		updated.Title = *update.Title
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.ActivityDate != nil {
		updated.ActivityDate = *update.ActivityDate
	}
	if update.FacultyCoordinator != nil {
		updated.FacultyCoordinator = update.FacultyCoordinator
	}
	if update.ReportURL != nil {
		updated.ReportURL = update.ReportURL
	}
	if update.ReportCloudinaryID != nil {
		updated.ReportCloudinaryID = update.ReportCloudinaryID
	}
	f.activities[id] = &updated
	return &updated, nil
}

func (f *fakeActivityStore) Delete(ctx context.Context, id int64) (bool, error) {
	f.deletedIDs = append(f.deletedIDs, id)
	delete(f.activities, id)
	return f.deleteResult, nil
}

func (f *fakeActivityStore) GetAll(ctx context.Context, limit int) ([]*models.Activity, error) {
	var out []*models.Activity
	for _, a := range f.activities {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeActivityStore) GetAllWithWings(ctx context.Context) ([]*models.ActivityWithWing, error) {
	return f.withWings, nil
}

// fakePhotoStore records mutations for assertion.
type fakePhotoStore struct {
	photos map[int64]*models.Photo

	bulkCalls    [][]*models.Photo
	bulkErr      error
	deletedIDs   []int64
	deleteResult bool
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{
		photos:       map[int64]*models.Photo{},
		deleteResult: true,
	}
}

func (f *fakePhotoStore) GetByWing(ctx context.Context, wingID int64, limit, offset int) ([]*models.Photo, error) {
	var out []*models.Photo
	for _, p := range f.photos {
		if p.WingID == wingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhotoStore) GetLatestByWing(ctx context.Context, wingID int64, limit int) ([]*models.Photo, error) {
	return f.GetByWing(ctx, wingID, limit, 0)
}

func (f *fakePhotoStore) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	p, ok := f.photos[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (f *fakePhotoStore) CreateBulk(ctx context.Context, photos []*models.Photo) error {
	if f.bulkErr != nil {
		return f.bulkErr
	}
	f.bulkCalls = append(f.bulkCalls, photos)
	for i, p := range photos {
		p.ID = int64(len(f.photos) + i + 1)
		f.photos[p.ID] = p
	}
	return nil
}

func (f *fakePhotoStore) Delete(ctx context.Context, id int64) (bool, error) {
	f.deletedIDs = append(f.deletedIDs, id)
	delete(f.photos, id)
	return f.deleteResult, nil
}

// fakeMedia implements mediastore.Uploader in memory, counting calls and
// optionally failing after a set number of image uploads.
type fakeMedia struct {
	imageFolders  []string
	reportFolders []string

	failImageAfter int // -1 never fails
	reportErr      error

	deletedImages  []string
	deletedReports []string
	deleteErr      error

	nextID int
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{failImageAfter: -1}
}

func (f *fakeMedia) UploadImage(ctx context.Context, file io.Reader, folder string) (*mediastore.Asset, error) {
	if f.failImageAfter >= 0 && len(f.imageFolders) >= f.failImageAfter {
		return nil, errors.New("media host unavailable")
	}
	f.imageFolders = append(f.imageFolders, folder)
	f.nextID++
	return &mediastore.Asset{
		URL:      fmt.Sprintf("https://media.test/%s/img-%d.jpg", folder, f.nextID),
		PublicID: fmt.Sprintf("%s/img-%d", folder, f.nextID),
	}, nil
}

func (f *fakeMedia) UploadReport(ctx context.Context, file io.Reader, folder string) (*mediastore.Asset, error) {
	if f.reportErr != nil {
		return nil, f.reportErr
	}
	f.reportFolders = append(f.reportFolders, folder)
	f.nextID++
	return &mediastore.Asset{
		URL:      fmt.Sprintf("https://media.test/%s/report-%d.pdf", folder, f.nextID),
		PublicID: fmt.Sprintf("%s/report-%d", folder, f.nextID),
	}, nil
}

func (f *fakeMedia) DeleteImage(ctx context.Context, publicID string) error {
	f.deletedImages = append(f.deletedImages, publicID)
	return f.deleteErr
}

func (f *fakeMedia) DeleteReport(ctx context.Context, publicID string) error {
	f.deletedReports = append(f.deletedReports, publicID)
	return f.deleteErr
}
