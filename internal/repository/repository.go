package repository

import (
	"errors"
	"sync"

	"github.com/natarchives/visitordesk/backend/internal/config"
	"github.com/natarchives/visitordesk/backend/internal/domain"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrEditConflict      = errors.New("record was modified concurrently, retry")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrEmailTaken        = errors.New("email already exists")
	ErrAlreadyCheckedIn  = errors.New("an active record with this identifier already exists")
	ErrAlreadyCheckedOut = errors.New("record is already checked out")
	ErrNotResearcher     = errors.New("visitor is not a researcher")
)

// Repository holds the process-resident collections. Entries are stored by
// value and copied on every read and write, so callers never alias the
// stored records. Ids are assigned per collection, monotonically, and never
// reused. All data is lost on restart.
type Repository struct {
	cfg *config.Config

	mu sync.RWMutex

	users         map[int64]domain.User
	visitors      map[int64]domain.Visitor
	libraryVisits map[int64]domain.LibraryVisit

	nextUserID         int64
	nextVisitorID      int64
	nextLibraryVisitID int64
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		cfg:           cfg,
		users:         make(map[int64]domain.User),
		visitors:      make(map[int64]domain.Visitor),
		libraryVisits: make(map[int64]domain.LibraryVisit),

		nextUserID:         1,
		nextVisitorID:      1,
		nextLibraryVisitID: 1,
	}
}
