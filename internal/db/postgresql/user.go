package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/collectorlists/collectorsrv/internal/db/dberror"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/rs/zerolog/log"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// CreateUser inserts a new user. The email column is unique; inserting a
// duplicate returns ErrAlreadyExists.
func (h *collectorDb) CreateUser(ctx context.Context, user *models.User) error {
	user.UserID = uuid.New()

	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at;
	`

	row := h.conn().QueryRowContext(ctx, query, user.UserID, user.Email, user.PasswordHash)
	err := row.Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.Ctx(ctx).Info().Str("email", user.Email).Msg("email already registered")
			return dberror.ErrAlreadyExists.Msg("email already registered")
		}
		log.Ctx(ctx).Error().Err(err).Str("email", user.Email).Msg("failed to insert user")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// GetUser retrieves a user by ID.
func (h *collectorDb) GetUser(ctx context.Context, userID types.UserId) (*models.User, error) {
	if userID.IsNil() {
		log.Ctx(ctx).Error().Msg("user ID must be provided")
		return nil, dberror.ErrInvalidInput.Msg("user ID must be provided")
	}

	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	row := h.conn().QueryRowContext(ctx, query, uuid.UUID(userID))
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("user_id", userID.String()).Msg("user not found")
			return nil, dberror.ErrNotFound.Msg("user not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("user_id", userID.String()).Msg("failed to retrieve user")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email. The comparison is case-sensitive,
// matching how the column is stored.
func (h *collectorDb) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, dberror.ErrInvalidInput.Msg("email must be provided")
	}

	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1;
	`

	var user models.User
	row := h.conn().QueryRowContext(ctx, query, email)
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("user not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve user by email")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &user, nil
}

// DeleteUser deletes a user. Owned collections, their fields, items and
// values go with it via the FK cascade chain.
func (h *collectorDb) DeleteUser(ctx context.Context, userID types.UserId) error {
	if userID.IsNil() {
		return dberror.ErrInvalidInput.Msg("user ID must be provided")
	}

	query := `
		DELETE FROM users
		WHERE id = $1;
	`

	if _, err := h.conn().ExecContext(ctx, query, uuid.UUID(userID)); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("user_id", userID.String()).Msg("failed to delete user")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}
