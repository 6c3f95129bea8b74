package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"editorial_pipeline/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) Get(ctx context.Context, id int64) (*domain.Article, error) {
	query := `
		SELECT id, research_id, title, content, excerpt, ai_summary, status,
		       series_parent_id, series_order, published_at, model,
		       generation_started_at, created_at, updated_at
		FROM articles WHERE id = $1`

	var article domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (
			research_id, title, content, excerpt, ai_summary, status,
			series_parent_id, series_order, model, generation_started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		article.ResearchID,
		article.Title,
		article.Content,
		article.Excerpt,
		article.AISummary,
		article.Status,
		article.SeriesParentID,
		article.SeriesOrder,
		article.Model,
		article.GenerationStartedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *ArticleStore) UpdateContent(ctx context.Context, id int64, content string) error {
	query := `UPDATE articles SET content = $2, updated_at = NOW() WHERE id = $1`

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, content)
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

// ListSummaries returns title and summary of every article in a taxonomy,
// used to steer suggestion generation away from existing coverage.
func (s *ArticleStore) ListSummaries(ctx context.Context, taxonomyID int64) ([]domain.Article, error) {
	query := `
		SELECT a.id, a.research_id, a.title, '' AS content, a.excerpt,
		       a.ai_summary, a.status, a.series_parent_id, a.series_order,
		       a.published_at, a.model, a.generation_started_at,
		       a.created_at, a.updated_at
		FROM articles a
		JOIN research r ON r.id = a.research_id
		JOIN suggestions s ON s.id = r.suggestion_id
		WHERE s.taxonomy_id = $1
		ORDER BY a.created_at`

	var articles []domain.Article
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, taxonomyID); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleStore) MarkTranslated(ctx context.Context, id int64) error {
	query := `UPDATE articles SET translations_updated_at = NOW() WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id)
	return err
}
