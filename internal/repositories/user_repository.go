package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"messenger-service/internal/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

const onlineWindow = `(NOW() - last_seen) < INTERVAL '5 minutes'`

// UserRepository abstracts account persistence and the directory queries.
type UserRepository interface {
	Create(ctx context.Context, username, displayName, avatar, passwordHash string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id int) (models.UserProfile, error)
	UpdateLastSeen(ctx context.Context, id int) error
	Search(ctx context.Context, query string, excludeID int) ([]models.UserProfile, error)
	List(ctx context.Context, excludeID int) ([]models.UserProfile, error)
}

// UserRepo is a sqlx implementation of UserRepository.
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo constructs a UserRepo.
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new account. A duplicate username surfaces as
// ErrUsernameTaken even when two registrations race.
func (r *UserRepo) Create(ctx context.Context, username, displayName, avatar, passwordHash string) (models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user,
		`INSERT INTO users (username, display_name, avatar, password_hash) VALUES ($1, $2, $3, $4)
         RETURNING id, username, display_name, avatar, password_hash, status, last_seen`,
		username, displayName, avatar, passwordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// GetByUsername fetches an account by its exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, username, display_name, avatar, password_hash, status, last_seen FROM users WHERE username = $1`,
		username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// GetByID returns the full profile including raw last_seen.
func (r *UserRepo) GetByID(ctx context.Context, id int) (models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.GetContext(ctx, &profile,
		`SELECT id, username, display_name, avatar, status, `+onlineWindow+` AS online, last_seen
         FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrUserNotFound
	}
	return profile, err
}

// UpdateLastSeen stamps the user's presence with the current time.
func (r *UserRepo) UpdateLastSeen(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_seen = NOW() WHERE id = $1`, id)
	return err
}

// Search does a case-insensitive substring match on username and display_name,
// excluding the requester.
func (r *UserRepo) Search(ctx context.Context, query string, excludeID int) ([]models.UserProfile, error) {
	pattern := "%" + query + "%"
	var profiles []models.UserProfile
	err := r.db.SelectContext(ctx, &profiles,
		`SELECT id, username, display_name, avatar, status, `+onlineWindow+` AS online
         FROM users
         WHERE (username ILIKE $1 OR display_name ILIKE $1) AND id <> $2
         LIMIT 50`, pattern, excludeID)
	return profiles, err
}

// List returns every user except the requester, alphabetical by display name.
func (r *UserRepo) List(ctx context.Context, excludeID int) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := r.db.SelectContext(ctx, &profiles,
		`SELECT id, username, display_name, avatar, status, `+onlineWindow+` AS online
         FROM users
         WHERE id <> $1
         ORDER BY display_name
         LIMIT 100`, excludeID)
	return profiles, err
}
