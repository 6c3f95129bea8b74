package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"editorial_pipeline/internal/domain"
)

// OutboxStore persists translation fan-out intents. Appends happen inside
// the approval/update transaction; the dispatcher reads pending rows after
// commit, so an intent is only ever visible once its entity change is.
type OutboxStore struct {
	db *sqlx.DB
}

func NewOutboxStore(db *sqlx.DB) *OutboxStore {
	return &OutboxStore{db: db}
}

func (s *OutboxStore) Append(ctx context.Context, intent *domain.FanoutIntent) error {
	query := `
		INSERT INTO translation_outbox (entity_type, entity_id, fields)
		VALUES ($1, $2, $3)
		RETURNING id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		intent.EntityType,
		intent.EntityID,
		pq.Array(intent.Fields),
	).Scan(&intent.ID)
}

func (s *OutboxStore) Pending(ctx context.Context, limit int) ([]domain.FanoutIntent, error) {
	query := `
		SELECT id, entity_type, entity_id, fields, created_at, done_at
		FROM translation_outbox
		WHERE done_at IS NULL
		ORDER BY created_at
		LIMIT $1`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intents []domain.FanoutIntent
	for rows.Next() {
		var intent domain.FanoutIntent
		var fields pq.StringArray
		err := rows.Scan(
			&intent.ID,
			&intent.EntityType,
			&intent.EntityID,
			&fields,
			&intent.CreatedAt,
			&intent.DoneAt,
		)
		if err != nil {
			return nil, err
		}
		intent.Fields = fields
		intents = append(intents, intent)
	}

	return intents, rows.Err()
}

func (s *OutboxStore) MarkDone(ctx context.Context, id int64) error {
	query := `UPDATE translation_outbox SET done_at = NOW() WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id)
	return err
}
