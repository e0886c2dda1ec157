package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lol-tracker/internal/db"
	"lol-tracker/internal/domain"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

type UserRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewUserRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash, firstName string) (*domain.User, error) {
	now := time.Now().UTC()
	row, err := r.queries.CreateUser(ctx, db.CreateUserParams{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row, err := r.queries.GetUserByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainUser(row), nil
}

func (r *UserRepository) SetLolUsername(ctx context.Context, id int64, name string) error {
	rows, err := r.queries.UpdateUserLolUsername(ctx, db.UpdateUserLolUsernameParams{
		LolUsername: sql.NullString{String: name, Valid: true},
		UpdatedAt:   time.Now().UTC(),
		ID:          id,
	})
	if err != nil {
		return fmt.Errorf("failed to update lol username: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetLastSyncedAt runs after the request finished, so it carries its own
// context.
func (r *UserRepository) SetLastSyncedAt(id int64, syncedAt time.Time) error {
	err := r.queries.UpdateUserLastSyncedAt(context.Background(), db.UpdateUserLastSyncedAtParams{
		LastSyncedAt: sql.NullTime{Time: syncedAt, Valid: true},
		UpdatedAt:    time.Now().UTC(),
		ID:           id,
	})
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", id).Msg("failed to set last synced at")
		return err
	}
	return nil
}

// Delete removes the user row; user_matches links go with it via cascade.
// Match and stat rows stay, they may back other users' histories.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.queries.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func toDomainUser(row db.User) *domain.User {
	user := &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		FirstName:    row.FirstName,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.LolUsername.Valid {
		name := row.LolUsername.String
		user.LolUsername = &name
	}
	if row.LastSyncedAt.Valid {
		syncedAt := row.LastSyncedAt.Time
		user.LastSyncedAt = &syncedAt
	}
	return user
}
