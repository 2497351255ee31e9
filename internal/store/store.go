package store

import (
	"context"
	"errors"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	ProfessionalInfo() ProfessionalInfo
	Educations() Educations
	Experiences() Experiences
	Projects() Projects
	Preferences() Preferences
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Multi-step credential updates (the
	// reset-token read-modify-write in particular) go through this.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by its UUID.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and reset issuance. Emails are
	// compared case-sensitively, as stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByResetToken returns the user whose stored reset token equals
	// token and whose stored expiry is strictly after now.
	GetUserByResetToken(ctx context.Context, token string, now time.Time) (domain.User, error)

	// ListUsers returns users ordered by creation date.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via UUID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser mutates the profile fields (email, name, role, bio, avatar)
	// and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// SetResetToken stores the reset token and its expiry, overwriting any
	// prior token for the user.
	SetResetToken(ctx context.Context, userID, token string, expires time.Time) error

	// ClearResetToken nulls the reset token and expiry.
	ClearResetToken(ctx context.Context, userID string) error

	// DeleteUser cascades to all portfolio records (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type ProfessionalInfo interface {
	GetByUserID(ctx context.Context, userID string) (domain.ProfessionalInfo, error)
	Create(ctx context.Context, p domain.ProfessionalInfo) error
	Update(ctx context.Context, p domain.ProfessionalInfo) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type Educations interface {
	GetByID(ctx context.Context, id string) (domain.Education, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Education, error)
	Create(ctx context.Context, e domain.Education) error
	Update(ctx context.Context, e domain.Education) error
	Delete(ctx context.Context, id string) error
}

type Experiences interface {
	GetByID(ctx context.Context, id string) (domain.Experience, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Experience, error)
	Create(ctx context.Context, e domain.Experience) error
	Update(ctx context.Context, e domain.Experience) error
	Delete(ctx context.Context, id string) error
}

type Projects interface {
	GetByID(ctx context.Context, id string) (domain.Project, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Project, error)
	Create(ctx context.Context, p domain.Project) error
	Update(ctx context.Context, p domain.Project) error
	Delete(ctx context.Context, id string) error
}

type Preferences interface {
	GetByUserID(ctx context.Context, userID string) (domain.Preference, error)
	Create(ctx context.Context, p domain.Preference) error
	Update(ctx context.Context, p domain.Preference) error
}

type Todos interface {
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Todo, error)
	Create(ctx context.Context, t domain.Todo) error
	Update(ctx context.Context, t domain.Todo) error
	Delete(ctx context.Context, id string) error
}
