package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"editorial_pipeline/internal/domain"
)

type ResearchStore struct {
	db *sqlx.DB
}

func NewResearchStore(db *sqlx.DB) *ResearchStore {
	return &ResearchStore{db: db}
}

func (s *ResearchStore) Get(ctx context.Context, id int64) (*domain.Research, error) {
	query := `
		SELECT id, suggestion_id, content, status, model, generation_started_at,
		       created_at, updated_at
		FROM research WHERE id = $1`

	var research domain.Research
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &research, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &research, nil
}

func (s *ResearchStore) Create(ctx context.Context, research *domain.Research) (int64, error) {
	query := `
		INSERT INTO research (suggestion_id, content, status, model, generation_started_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		research.SuggestionID,
		research.Content,
		research.Status,
		research.Model,
		research.GenerationStartedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *ResearchStore) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	query := `UPDATE research SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
