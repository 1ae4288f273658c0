package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned by lookups when no row matches. Services translate
// it into the transport-level not-found error.
var ErrNotFound = errors.New("not found")

// Repositories holds all the repository instances
type Repositories struct {
	WingRepository     *WingRepository
	ActivityRepository *ActivityRepository
	PhotoRepository    *PhotoRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		WingRepository:     NewWingRepository(db),
		ActivityRepository: NewActivityRepository(db),
		PhotoRepository:    NewPhotoRepository(db),
	}
}
