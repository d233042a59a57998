// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one full "users" row into u. The column order must match
// [userColumns].
func scanUser(row rowScanner, u *models.User) error {
	return row.Scan(
		&u.ID, &u.BadgeNumber, &u.Email, &u.SchoolEmail, &u.PasswordHash, &u.Status,
		&u.FirstName, &u.LastName, &u.DOB, &u.Gender, &u.Pronouns, &u.Race, &u.Ethnicity,
		&u.Address, &u.City, &u.State, &u.ZipCode, &u.PhoneNumber, &u.PhoneCarrier,
		&u.IsStudent, &u.TypeOfStudent, &u.School, &u.Degree, &u.AnticipatedGraduation, &u.Major, &u.Minor, &u.Classification,
		&u.IsHealthcareProvider, &u.TypeOfProvider, &u.Employer,
		&u.IsMultilingual, &u.IsAdmin, &u.CreatedAt,
	)
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateUser]. The email
//     and badge number constraints are deliberately not told apart.
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.BadgeNumber, user.Email, user.SchoolEmail, user.PasswordHash, user.Status,
		user.FirstName, user.LastName, user.DOB, user.Gender, user.Pronouns, user.Race, user.Ethnicity,
		user.Address, user.City, user.State, user.ZipCode, user.PhoneNumber, user.PhoneCarrier,
		user.IsStudent, user.TypeOfStudent, user.School, user.Degree, user.AnticipatedGraduation, user.Major, user.Minor, user.Classification,
		user.IsHealthcareProvider, user.TypeOfProvider, user.Employer,
		user.IsMultilingual, user.IsAdmin,
	)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrDuplicateUser
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	var created models.User
	if err := scanUser(row, &created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the one
// provided. Email is the login identifier, so at most one row can match.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	var found models.User
	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// GetUserByID retrieves the user record with the given primary key.
//
// Error handling mirrors [userRepository.FindUserByEmail]: a missing row
// maps to [ErrUserNotFound], everything else is wrapped.
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getUserByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.User
	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// ListUsers retrieves every user account ordered by ID. Used by the
// administrator roster listing.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: rows iteration error")
		return nil, err
	}

	return users, nil
}
