package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"editorial_pipeline/internal/domain"
)

type HashtagGroupStore struct {
	db *sqlx.DB
}

func NewHashtagGroupStore(db *sqlx.DB) *HashtagGroupStore {
	return &HashtagGroupStore{db: db}
}

func (s *HashtagGroupStore) Core(ctx context.Context) ([]domain.HashtagGroup, error) {
	return s.list(ctx, `SELECT id, name, hashtags, is_core FROM hashtag_groups WHERE is_core ORDER BY name`)
}

func (s *HashtagGroupStore) Optional(ctx context.Context) ([]domain.HashtagGroup, error) {
	return s.list(ctx, `SELECT id, name, hashtags, is_core FROM hashtag_groups WHERE NOT is_core ORDER BY name`)
}

func (s *HashtagGroupStore) list(ctx context.Context, query string) ([]domain.HashtagGroup, error) {
	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.HashtagGroup
	for rows.Next() {
		var group domain.HashtagGroup
		var hashtags pq.StringArray
		if err := rows.Scan(&group.ID, &group.Name, &hashtags, &group.IsCore); err != nil {
			return nil, err
		}
		group.Hashtags = hashtags
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

func (s *HashtagGroupStore) ByName(ctx context.Context, name string) (*domain.HashtagGroup, error) {
	query := `SELECT id, name, hashtags, is_core FROM hashtag_groups WHERE name = $1`

	var group domain.HashtagGroup
	var hashtags pq.StringArray
	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, name)
	err := row.Scan(&group.ID, &group.Name, &hashtags, &group.IsCore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	group.Hashtags = hashtags
	return &group, nil
}

type SocialPostStore struct {
	db *sqlx.DB
}

func NewSocialPostStore(db *sqlx.DB) *SocialPostStore {
	return &SocialPostStore{db: db}
}

func (s *SocialPostStore) Get(ctx context.Context, id int64) (*domain.SocialPost, error) {
	query := `
		SELECT id, article_id, post_type, content, hashtags, status, posted_at,
		       model, generation_started_at, created_at
		FROM social_posts WHERE id = $1`

	var post domain.SocialPost
	var hashtags pq.StringArray
	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, id)
	err := row.Scan(
		&post.ID,
		&post.ArticleID,
		&post.PostType,
		&post.Content,
		&hashtags,
		&post.Status,
		&post.PostedAt,
		&post.Model,
		&post.GenerationStartedAt,
		&post.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	post.Hashtags = hashtags
	return &post, nil
}

func (s *SocialPostStore) CreateBatch(ctx context.Context, posts []*domain.SocialPost) error {
	query := `
		INSERT INTO social_posts (
			article_id, post_type, content, hashtags, status, model,
			generation_started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	exec := GetExecutor(ctx, s.db)
	for _, post := range posts {
		err := exec.QueryRowxContext(ctx, query,
			post.ArticleID,
			post.PostType,
			post.Content,
			pq.Array(post.Hashtags),
			post.Status,
			post.Model,
			post.GenerationStartedAt,
		).Scan(&post.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

type MediaSuggestionStore struct {
	db *sqlx.DB
}

func NewMediaSuggestionStore(db *sqlx.DB) *MediaSuggestionStore {
	return &MediaSuggestionStore{db: db}
}

func (s *MediaSuggestionStore) Create(ctx context.Context, suggestion *domain.MediaSuggestion) (int64, error) {
	query := `
		INSERT INTO media_suggestions (
			research_id, commons_categories, search_queries,
			illustration_topics, reasoning, model, generation_started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		suggestion.ResearchID,
		pq.Array(suggestion.CommonsCategories),
		pq.Array(suggestion.SearchQueries),
		pq.Array(suggestion.IllustrationTopics),
		suggestion.Reasoning,
		suggestion.Model,
		suggestion.GenerationStartedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

type UsageStore struct {
	db *sqlx.DB
}

func NewUsageStore(db *sqlx.DB) *UsageStore {
	return &UsageStore{db: db}
}

// Record appends one ledger entry. The ledger is append-only and never read
// on the hot path, so this deliberately bypasses any context transaction.
func (s *UsageStore) Record(ctx context.Context, usage *domain.Usage) error {
	query := `
		INSERT INTO usage_ledger (provider, model, input_tokens, output_tokens, cost)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		usage.Provider,
		usage.Model,
		usage.InputTokens,
		usage.OutputTokens,
		usage.Cost,
	)
	return err
}
