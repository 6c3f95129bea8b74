package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"editorial_pipeline/internal/domain"
)

type TranslationStore struct {
	db *sqlx.DB
}

func NewTranslationStore(db *sqlx.DB) *TranslationStore {
	return &TranslationStore{db: db}
}

func (s *TranslationStore) Get(ctx context.Context, entityType string, entityID int64, field, language string) (*domain.Translation, error) {
	query := `
		SELECT id, entity_type, entity_id, field, language, content, model,
		       generation_started_at, created_at, updated_at
		FROM translations
		WHERE entity_type = $1 AND entity_id = $2 AND field = $3 AND language = $4`

	var translation domain.Translation
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &translation, query,
		entityType, entityID, field, language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &translation, nil
}

// Upsert inserts or replaces the row for the (entity type, entity id, field,
// language) tuple. Re-translation after an edit overwrites in place.
func (s *TranslationStore) Upsert(ctx context.Context, translation *domain.Translation) error {
	query := `
		INSERT INTO translations (
			entity_type, entity_id, field, language, content, model,
			generation_started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (entity_type, entity_id, field, language) DO UPDATE SET
			content = EXCLUDED.content,
			model = EXCLUDED.model,
			generation_started_at = EXCLUDED.generation_started_at,
			updated_at = NOW()
		RETURNING id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		translation.EntityType,
		translation.EntityID,
		translation.Field,
		translation.Language,
		translation.Content,
		translation.Model,
		translation.StartedAt,
	).Scan(&translation.ID)
}

type LanguageStore struct {
	db *sqlx.DB
}

func NewLanguageStore(db *sqlx.DB) *LanguageStore {
	return &LanguageStore{db: db}
}

func (s *LanguageStore) Active(ctx context.Context) ([]domain.Language, error) {
	query := `SELECT id, code, name, is_active, is_default FROM languages WHERE is_active ORDER BY code`

	var languages []domain.Language
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &languages, query); err != nil {
		return nil, err
	}
	return languages, nil
}

func (s *LanguageStore) Default(ctx context.Context) (*domain.Language, error) {
	query := `SELECT id, code, name, is_active, is_default FROM languages WHERE is_default`

	var language domain.Language
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &language, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &language, nil
}
