package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"editorial_pipeline/internal/domain"
)

type SuggestionStore struct {
	db *sqlx.DB
}

func NewSuggestionStore(db *sqlx.DB) *SuggestionStore {
	return &SuggestionStore{db: db}
}

func (s *SuggestionStore) Get(ctx context.Context, id int64) (*domain.Suggestion, error) {
	query := `
		SELECT id, taxonomy_id, title, main_topic, sub_topics, point_of_view,
		       status, model, generation_started_at, created_at, updated_at
		FROM suggestions WHERE id = $1`

	var suggestion domain.Suggestion
	var subTopics pq.StringArray
	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, id)
	err := row.Scan(
		&suggestion.ID,
		&suggestion.TaxonomyID,
		&suggestion.Title,
		&suggestion.MainTopic,
		&subTopics,
		&suggestion.PointOfView,
		&suggestion.Status,
		&suggestion.Model,
		&suggestion.GenerationStartedAt,
		&suggestion.CreatedAt,
		&suggestion.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	suggestion.SubTopics = subTopics
	return &suggestion, nil
}

func (s *SuggestionStore) CreateBatch(ctx context.Context, suggestions []*domain.Suggestion) error {
	query := `
		INSERT INTO suggestions (
			taxonomy_id, title, main_topic, sub_topics, point_of_view,
			status, model, generation_started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	exec := GetExecutor(ctx, s.db)
	for _, suggestion := range suggestions {
		err := exec.QueryRowxContext(ctx, query,
			suggestion.TaxonomyID,
			suggestion.Title,
			suggestion.MainTopic,
			pq.Array(suggestion.SubTopics),
			suggestion.PointOfView,
			suggestion.Status,
			suggestion.Model,
			suggestion.GenerationStartedAt,
		).Scan(&suggestion.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *SuggestionStore) ListApprovedWithoutResearch(ctx context.Context) ([]domain.Suggestion, error) {
	query := `
		SELECT s.id, s.taxonomy_id, s.title, s.main_topic, s.sub_topics,
		       s.point_of_view, s.status, s.model, s.generation_started_at,
		       s.created_at, s.updated_at
		FROM suggestions s
		LEFT JOIN research r ON r.suggestion_id = s.id
		WHERE s.status = 'approved' AND r.id IS NULL
		ORDER BY s.created_at`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []domain.Suggestion
	for rows.Next() {
		var suggestion domain.Suggestion
		var subTopics pq.StringArray
		err := rows.Scan(
			&suggestion.ID,
			&suggestion.TaxonomyID,
			&suggestion.Title,
			&suggestion.MainTopic,
			&subTopics,
			&suggestion.PointOfView,
			&suggestion.Status,
			&suggestion.Model,
			&suggestion.GenerationStartedAt,
			&suggestion.CreatedAt,
			&suggestion.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		suggestion.SubTopics = subTopics
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, rows.Err()
}

type TaxonomyStore struct {
	db *sqlx.DB
}

func NewTaxonomyStore(db *sqlx.DB) *TaxonomyStore {
	return &TaxonomyStore{db: db}
}

func (s *TaxonomyStore) Get(ctx context.Context, id int64) (*domain.Taxonomy, error) {
	query := `SELECT id, name, description, short_form FROM taxonomies WHERE id = $1`

	var taxonomy domain.Taxonomy
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &taxonomy, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &taxonomy, nil
}
