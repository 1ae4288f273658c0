package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/app/models/dto"
	"github.com/anvaya-club/backend/internal/app/services"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubPhotoService records the pagination values it receives.
type stubPhotoService struct {
	gotLimit  int
	gotOffset int
}

func (s *stubPhotoService) ListByWing(ctx context.Context, slug string, limit, offset int) ([]*models.Photo, error) {
	s.gotLimit = limit
	s.gotOffset = offset
	return []*models.Photo{}, nil
}

func (s *stubPhotoService) LatestByWing(ctx context.Context, slug string, limit int) ([]*models.Photo, error) {
	s.gotLimit = limit
	return []*models.Photo{}, nil
}

func (s *stubPhotoService) Upload(ctx context.Context, wingID int64, files []services.FileInput) ([]*models.Photo, error) {
	return nil, nil
}

func (s *stubPhotoService) Delete(ctx context.Context, id int64) error {
	return nil
}

// stubAuthService always rejects credentials.
type stubAuthService struct{}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	return nil, apperrors.NewAuthentication("Invalid username or password")
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	return body
}

func photoRouter(svc services.PhotoService) *gin.Engine {
	router := gin.New()
	pc := NewPhotoController(svc)
	router.GET("/api/wings/:slug/photos", pc.ListByWing)
	return router
}

// TestPhotoListRejectsOutOfRangeLimit verifies limit=0 and limit=501 are
// rejected with 422, not clamped.
func TestPhotoListRejectsOutOfRangeLimit(t *testing.T) {
	for _, limit := range []string{"0", "501"} {
		stub := &stubPhotoService{gotLimit: -1}
		router := photoRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/wings/technical/photos?limit="+limit, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("limit=%s: expected 422, got %d", limit, w.Code)
		}
		body := decodeError(t, w)
		if body.ErrorCode != "VALIDATION_ERROR" {
			t.Errorf("limit=%s: expected VALIDATION_ERROR, got %s", limit, body.ErrorCode)
		}
		if stub.gotLimit != -1 {
			t.Errorf("limit=%s: service was called with %d", limit, stub.gotLimit)
		}
	}
}

// TestPhotoListDefaults verifies missing pagination parameters fall back to
// the documented defaults.
func TestPhotoListDefaults(t *testing.T) {
	stub := &stubPhotoService{}
	router := photoRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wings/technical/photos", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if stub.gotLimit != 100 || stub.gotOffset != 0 {
		t.Errorf("Expected defaults limit=100 offset=0, got limit=%d offset=%d", stub.gotLimit, stub.gotOffset)
	}
}

// TestPhotoListRejectsNegativeOffset verifies offset=-1 fails validation.
func TestPhotoListRejectsNegativeOffset(t *testing.T) {
	router := photoRouter(&stubPhotoService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wings/technical/photos?offset=-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", w.Code)
	}
}

// TestLoginFailureChallenge verifies a failed login returns 401 with the
// bearer challenge header and the uniform error body.
func TestLoginFailureChallenge(t *testing.T) {
	router := gin.New()
	router.POST("/api/admin/login", NewAuthController(&stubAuthService{}).Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		jsonBody(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}
	if w.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("Expected WWW-Authenticate: Bearer header, got %q", w.Header().Get("WWW-Authenticate"))
	}
	body := decodeError(t, w)
	if body.ErrorCode != "AUTHENTICATION_ERROR" {
		t.Errorf("Expected AUTHENTICATION_ERROR, got %s", body.ErrorCode)
	}
}

// TestLoginMissingFields verifies an incomplete body fails validation.
func TestLoginMissingFields(t *testing.T) {
	router := gin.New()
	router.POST("/api/admin/login", NewAuthController(&stubAuthService{}).Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", jsonBody(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", w.Code)
	}
}
