package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/prompts"
)

// TranslatableField names one field of an entity and how it should be
// translated. Metadata fields (titles, names, alt text) use the short
// translation template; content fields use the long-form one.
type TranslatableField struct {
	Name string
	Kind generation.FieldKind
}

// TranslationHandler adapts one entity type to the translation dispatcher.
type TranslationHandler interface {
	// EntityType is the stable name used in translation rows and intents.
	EntityType() string
	// Fields lists the translatable fields in dispatch order.
	Fields() []TranslatableField
	// Validate reports whether the entity exists and is eligible for
	// translation right now.
	Validate(ctx context.Context, entityID int64) error
	// FieldValue returns the live source value of one field.
	FieldValue(ctx context.Context, entityID int64, field string) (string, error)
	// PreTranslate transforms the source value before the generation call.
	PreTranslate(field, value string) (string, error)
	// PostTranslate transforms the generated value before storage, and is
	// also where per-entity bookkeeping hooks run after a full dispatch.
	PostTranslate(field, value string) (string, error)
	// Finish runs once after all fields of one dispatch, with the per-field
	// success map.
	Finish(ctx context.Context, entityID int64, results map[string]bool) error
}

// HandlerRegistry maps entity types to their handlers. Registration is
// explicit and happens once at wiring time.
type HandlerRegistry struct {
	handlers map[string]TranslationHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]TranslationHandler)}
}

func (r *HandlerRegistry) Register(h TranslationHandler) {
	r.handlers[h.EntityType()] = h
}

func (r *HandlerRegistry) Get(entityType string) (TranslationHandler, bool) {
	h, ok := r.handlers[entityType]
	return h, ok
}

// Translator dispatches field translations for registered entity types and
// drains the fan-out outbox.
type Translator struct {
	client       Generator
	registry     *HandlerRegistry
	translations TranslationStore
	languages    LanguageStore
	outbox       OutboxStore
	publisher    IntentPublisher
	logger       *slog.Logger
}

func NewTranslator(
	client Generator,
	registry *HandlerRegistry,
	translations TranslationStore,
	languages LanguageStore,
	outbox OutboxStore,
	publisher IntentPublisher,
	logger *slog.Logger,
) *Translator {
	return &Translator{
		client:       client,
		registry:     registry,
		translations: translations,
		languages:    languages,
		outbox:       outbox,
		publisher:    publisher,
		logger:       logger.With("service", "translator"),
	}
}

// Translate translates the given fields of one entity into one target
// language. An empty field list means all translatable fields. It returns
// the per-field success map; a field that fails is logged and skipped, not
// fatal to the rest.
func (t *Translator) Translate(ctx context.Context, entityType string, entityID int64, fields []string, targetLanguage string) (map[string]bool, error) {
	handler, ok := t.registry.Get(entityType)
	if !ok {
		return nil, validationf("no translation handler for entity type %q", entityType)
	}

	defaultLang, err := t.languages.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("load default language: %w", err)
	}
	if defaultLang == nil {
		return nil, validationf("no default language configured")
	}
	if targetLanguage == defaultLang.Code {
		return nil, validationf("target language %q is the source language", targetLanguage)
	}

	target, err := t.activeLanguage(ctx, targetLanguage)
	if err != nil {
		return nil, err
	}

	if err := handler.Validate(ctx, entityID); err != nil {
		return nil, err
	}

	wanted, err := resolveFields(handler, fields)
	if err != nil {
		return nil, err
	}

	results := make(map[string]bool, len(wanted))
	for _, field := range wanted {
		if err := t.translateField(ctx, handler, entityID, field, defaultLang.Code, target.Code); err != nil {
			t.logger.Error("field translation failed",
				"entity_type", entityType,
				"entity_id", entityID,
				"field", field.Name,
				"language", target.Code,
				"error", err,
			)
			results[field.Name] = false
			continue
		}
		results[field.Name] = true
	}

	if err := handler.Finish(ctx, entityID, results); err != nil {
		t.logger.Error("translation finish hook failed",
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err,
		)
	}

	return results, nil
}

func (t *Translator) activeLanguage(ctx context.Context, code string) (*domain.Language, error) {
	active, err := t.languages.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active languages: %w", err)
	}
	for i := range active {
		if active[i].Code == code {
			return &active[i], nil
		}
	}
	return nil, validationf("language %q is not active", code)
}

func resolveFields(handler TranslationHandler, names []string) ([]TranslatableField, error) {
	all := handler.Fields()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]TranslatableField, len(all))
	for _, f := range all {
		byName[f.Name] = f
	}

	fields := make([]TranslatableField, 0, len(names))
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			return nil, validationf("field %q is not translatable for %s", name, handler.EntityType())
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (t *Translator) translateField(ctx context.Context, handler TranslationHandler, entityID int64, field TranslatableField, sourceLang, targetLang string) error {
	// Prefer an existing source-language translation row; fall back to the
	// live field value.
	source := ""
	row, err := t.translations.Get(ctx, handler.EntityType(), entityID, field.Name, sourceLang)
	if err != nil {
		return fmt.Errorf("load source translation: %w", err)
	}
	if row != nil {
		source = row.Content
	} else {
		source, err = handler.FieldValue(ctx, entityID, field.Name)
		if err != nil {
			return fmt.Errorf("load field value: %w", err)
		}
	}
	if source == "" {
		return validationf("field %q has no source content", field.Name)
	}

	source, err = handler.PreTranslate(field.Name, source)
	if err != nil {
		return fmt.Errorf("pre-translate %q: %w", field.Name, err)
	}

	template := prompts.TranslateContent
	if field.Kind == generation.FieldMetadata {
		template = prompts.TranslateMetadata
	}
	prompt, err := generation.Render(template, map[string]string{
		"source_language": sourceLang,
		"target_language": targetLang,
		"entity_type":     handler.EntityType(),
		"field":           field.Name,
		"content":         source,
	})
	if err != nil {
		return fmt.Errorf("render translation prompt: %w", err)
	}

	startedAt := time.Now().UTC()
	result, err := t.client.Generate(ctx, prompt, nil)
	if err != nil {
		return fmt.Errorf("generate translation: %w", err)
	}
	if result.Text == "" {
		return validationf("empty translation for field %q", field.Name)
	}

	translated, err := handler.PostTranslate(field.Name, result.Text)
	if err != nil {
		return fmt.Errorf("post-translate %q: %w", field.Name, err)
	}

	translation := &domain.Translation{
		EntityType: handler.EntityType(),
		EntityID:   entityID,
		Field:      field.Name,
		Language:   targetLang,
		Content:    translated,
		Model:      t.client.Model(),
		StartedAt:  &startedAt,
	}
	if err := t.translations.Upsert(ctx, translation); err != nil {
		return fmt.Errorf("store translation: %w", err)
	}

	return nil
}

// Fanout translates the given fields into every active non-default language.
func (t *Translator) Fanout(ctx context.Context, entityType string, entityID int64, fields []string) (map[string]map[string]bool, error) {
	defaultLang, err := t.languages.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("load default language: %w", err)
	}
	if defaultLang == nil {
		return nil, validationf("no default language configured")
	}

	active, err := t.languages.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active languages: %w", err)
	}

	all := make(map[string]map[string]bool)
	for _, lang := range active {
		if lang.Code == defaultLang.Code {
			continue
		}
		results, err := t.Translate(ctx, entityType, entityID, fields, lang.Code)
		if err != nil {
			t.logger.Error("fanout language failed",
				"entity_type", entityType,
				"entity_id", entityID,
				"language", lang.Code,
				"error", err,
			)
			continue
		}
		all[lang.Code] = results
	}

	return all, nil
}

// Record appends a fan-out intent inside the caller's transaction. An empty
// field list means every translatable field; callers recording an edit pass
// only the fields that changed, and skip the call entirely when nothing
// translatable changed.
func (t *Translator) Record(ctx context.Context, entityType string, entityID int64, fields []string) error {
	if _, ok := t.registry.Get(entityType); !ok {
		return validationf("no translation handler for entity type %q", entityType)
	}
	return t.outbox.Append(ctx, &domain.FanoutIntent{
		EntityType: entityType,
		EntityID:   entityID,
		Fields:     fields,
	})
}

// ChangedFields compares the committed and current values of every
// translatable field and returns the names that differ.
func ChangedFields(handler TranslationHandler, committed, current map[string]string) []string {
	var changed []string
	for _, field := range handler.Fields() {
		if committed[field.Name] != current[field.Name] {
			changed = append(changed, field.Name)
		}
	}
	return changed
}

// DrainOutbox dispatches pending fan-out intents. Each intent is marked done
// after dispatch regardless of per-field outcomes; failed fields are visible
// in logs and in the published result.
func (t *Translator) DrainOutbox(ctx context.Context, limit int) (int, error) {
	intents, err := t.outbox.Pending(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("load pending intents: %w", err)
	}

	drained := 0
	for i := range intents {
		intent := intents[i]

		results, err := t.Fanout(ctx, intent.EntityType, intent.EntityID, intent.Fields)
		if err != nil {
			t.logger.Error("intent dispatch failed",
				"intent_id", intent.ID,
				"entity_type", intent.EntityType,
				"entity_id", intent.EntityID,
				"error", err,
			)
			continue
		}

		if err := t.outbox.MarkDone(ctx, intent.ID); err != nil {
			return drained, fmt.Errorf("mark intent %d done: %w", intent.ID, err)
		}
		drained++

		if t.publisher != nil {
			flat := make(map[string]bool)
			for lang, fields := range results {
				for field, ok := range fields {
					flat[lang+"."+field] = ok
				}
			}
			if err := t.publisher.PublishIntent(ctx, &intent, flat); err != nil {
				t.logger.Error("intent publish failed", "intent_id", intent.ID, "error", err)
			}
		}
	}

	return drained, nil
}
