package domain

import "time"

// Language is an approved translation target. Exactly one language is the
// default/source language of the system.
type Language struct {
	ID        int64  `db:"id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	IsActive  bool   `db:"is_active"`
	IsDefault bool   `db:"is_default"`
}

// Translation stores one translated field value. The
// (entity type, entity id, field, language) tuple is unique.
type Translation struct {
	ID         int64      `db:"id"`
	EntityType string     `db:"entity_type"`
	EntityID   int64      `db:"entity_id"`
	Field      string     `db:"field"`
	Language   string     `db:"language"`
	Content    string     `db:"content"`
	Model      string     `db:"model"`
	StartedAt  *time.Time `db:"generation_started_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// FanoutIntent is an outbox row recording that an entity needs translation.
// The approval/update path appends intents inside its transaction; the
// dispatcher consumes them after commit.
type FanoutIntent struct {
	ID         int64      `db:"id"`
	EntityType string     `db:"entity_type"`
	EntityID   int64      `db:"entity_id"`
	Fields     []string   `db:"-"` // empty means all translatable fields
	CreatedAt  time.Time  `db:"created_at"`
	DoneAt     *time.Time `db:"done_at"`
}
