package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// languageRepository is the PostgreSQL-backed implementation of
// [LanguageRepository].
type languageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLanguageRepository constructs a [LanguageRepository] backed by the
// provided database connection and logger.
func NewLanguageRepository(db *DB, logger *logger.Logger) LanguageRepository {
	logger.Debug().Msg("creating language repository")
	return &languageRepository{
		db:     db,
		logger: logger,
	}
}

// ListLanguagesByUser retrieves the languages reported by one user. An
// unknown user simply yields an empty slice.
func (r *languageRepository) ListLanguagesByUser(ctx context.Context, userID int64) ([]models.Language, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLanguagesByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*languageRepository.ListLanguagesByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	languages := make([]models.Language, 0)
	for rows.Next() {
		var l models.Language
		if err := rows.Scan(&l.ID, &l.Language, &l.Fluency, &l.UserID); err != nil {
			log.Err(err).Str("func", "*languageRepository.ListLanguagesByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		languages = append(languages, l)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*languageRepository.ListLanguagesByUser").Msg("error: rows iteration error")
		return nil, err
	}

	return languages, nil
}
