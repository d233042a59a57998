package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// experienceRepository is the PostgreSQL-backed implementation of
// [ExperienceRepository]. It manages attendance sessions in the
// "experiences" table.
type experienceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExperienceRepository constructs an [ExperienceRepository] backed by the
// provided database connection and logger.
func NewExperienceRepository(db *DB, logger *logger.Logger) ExperienceRepository {
	logger.Debug().Msg("creating experience repository")
	return &experienceRepository{
		db:     db,
		logger: logger,
	}
}

// scanExperience reads one "experiences" row into e. The column order must
// match [experienceColumns].
func scanExperience(row rowScanner, e *models.Experience) error {
	return row.Scan(&e.ID, &e.Date, &e.SignInTime, &e.SignOutTime, &e.Department, &e.UserID)
}

// CreateExperience persists a new attendance session and returns it with
// the server-assigned ID.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUserNotFound], since
//     the only foreign key points at the owning user.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *experienceRepository) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createExperience,
		experience.Date, experience.SignInTime, experience.SignOutTime, experience.Department, experience.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*experienceRepository.CreateExperience").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Experience{}, ErrUserNotFound
		default:
			return models.Experience{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.Experience
	if err := scanExperience(row, &created); err != nil {
		log.Err(err).Str("func", "*experienceRepository.CreateExperience").Msg("error: scanning error")
		return models.Experience{}, err
	}

	return created, nil
}

// GetExperienceByID retrieves the attendance session with the given
// primary key. A missing row maps to [ErrExperienceNotFound].
func (r *experienceRepository) GetExperienceByID(ctx context.Context, id int64) (models.Experience, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getExperienceByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*experienceRepository.GetExperienceByID").Msg("error: row is nil")
		return models.Experience{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.Experience
	if err := scanExperience(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Experience{}, ErrExperienceNotFound
		}
		log.Err(err).Str("func", "*experienceRepository.GetExperienceByID").Msg("error: scanning error")
		return models.Experience{}, err
	}

	return found, nil
}

// buildListExperiencesQuery dynamically builds the session listing SELECT
// from the optional filter fields.
func buildListExperiencesQuery(filter models.ExperienceFilter) (string, []any, error) {
	builder := squirrel.
		Select("id", "date", "sign_in_time", "sign_out_time", "department", "user_id").
		From("experiences").
		OrderBy("date", "sign_in_time", "id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.UserID != 0 {
		builder = builder.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.OnlyOpen {
		builder = builder.Where(squirrel.Eq{"sign_out_time": nil})
	}

	return builder.ToSql()
}

// ListExperiences retrieves attendance sessions matching the filter,
// ordered chronologically. An empty filter lists every session.
func (r *experienceRepository) ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExperiencesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.ListExperiences").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.ListExperiences").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	experiences := make([]models.Experience, 0)
	for rows.Next() {
		var e models.Experience
		if err := scanExperience(rows, &e); err != nil {
			log.Err(err).Str("func", "*experienceRepository.ListExperiences").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*experienceRepository.ListExperiences").Msg("error: rows iteration error")
		return nil, err
	}

	return experiences, nil
}

// UpdateExperience records the sign-out of the session with the given ID
// and optionally relabels its department. A nil department keeps the
// stored value (COALESCE in [updateExperience]).
//
// A missing row maps to [ErrExperienceNotFound].
func (r *experienceRepository) UpdateExperience(ctx context.Context, id int64, signOutTime time.Time, department *string) (models.Experience, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateExperience, signOutTime, department, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*experienceRepository.UpdateExperience").Msg("error: row is nil")
		return models.Experience{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated models.Experience
	if err := scanExperience(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Experience{}, ErrExperienceNotFound
		}
		log.Err(err).Str("func", "*experienceRepository.UpdateExperience").Msg("error: scanning error")
		return models.Experience{}, err
	}

	return updated, nil
}
