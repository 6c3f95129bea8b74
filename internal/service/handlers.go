package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
)

// ArticleTranslationHandler translates approved articles.
type ArticleTranslationHandler struct {
	articles ArticleStore
}

func NewArticleTranslationHandler(articles ArticleStore) *ArticleTranslationHandler {
	return &ArticleTranslationHandler{articles: articles}
}

func (h *ArticleTranslationHandler) EntityType() string { return "article" }

func (h *ArticleTranslationHandler) Fields() []TranslatableField {
	return []TranslatableField{
		{Name: "title", Kind: generation.FieldMetadata},
		{Name: "content", Kind: generation.FieldContent},
		{Name: "excerpt", Kind: generation.FieldContent},
	}
}

func (h *ArticleTranslationHandler) Validate(ctx context.Context, entityID int64) error {
	article, err := h.articles.Get(ctx, entityID)
	if err != nil {
		return fmt.Errorf("load article %d: %w", entityID, err)
	}
	if article == nil {
		return validationf("article %d not found", entityID)
	}
	if article.Status != domain.StatusApproved {
		return validationf("article %d is not approved", entityID)
	}
	if article.Title == "" || article.Content == "" {
		return validationf("article %d is missing title or content", entityID)
	}
	return nil
}

func (h *ArticleTranslationHandler) FieldValue(ctx context.Context, entityID int64, field string) (string, error) {
	article, err := h.articles.Get(ctx, entityID)
	if err != nil {
		return "", fmt.Errorf("load article %d: %w", entityID, err)
	}
	if article == nil {
		return "", validationf("article %d not found", entityID)
	}

	switch field {
	case "title":
		return article.Title, nil
	case "content":
		return article.Content, nil
	case "excerpt":
		return article.Excerpt, nil
	default:
		return "", validationf("unknown article field %q", field)
	}
}

func (h *ArticleTranslationHandler) PreTranslate(field, value string) (string, error) {
	return value, nil
}

func (h *ArticleTranslationHandler) PostTranslate(field, value string) (string, error) {
	return strings.TrimSpace(value), nil
}

func (h *ArticleTranslationHandler) Finish(ctx context.Context, entityID int64, results map[string]bool) error {
	for _, ok := range results {
		if ok {
			return h.articles.MarkTranslated(ctx, entityID)
		}
	}
	return nil
}

// SocialPostTranslationHandler translates approved, not-yet-posted social
// posts. Hashtags round-trip through a comma-joined string: joined before
// the call, split and re-encoded as a JSON array after it.
type SocialPostTranslationHandler struct {
	posts SocialPostStore
}

func NewSocialPostTranslationHandler(posts SocialPostStore) *SocialPostTranslationHandler {
	return &SocialPostTranslationHandler{posts: posts}
}

func (h *SocialPostTranslationHandler) EntityType() string { return "social_post" }

func (h *SocialPostTranslationHandler) Fields() []TranslatableField {
	return []TranslatableField{
		{Name: "content", Kind: generation.FieldContent},
		{Name: "hashtags", Kind: generation.FieldMetadata},
	}
}

func (h *SocialPostTranslationHandler) Validate(ctx context.Context, entityID int64) error {
	post, err := h.posts.Get(ctx, entityID)
	if err != nil {
		return fmt.Errorf("load social post %d: %w", entityID, err)
	}
	if post == nil {
		return validationf("social post %d not found", entityID)
	}
	if post.Status != domain.StatusApproved {
		return validationf("social post %d is not approved", entityID)
	}
	if post.PostedAt != nil {
		return validationf("social post %d was already posted", entityID)
	}
	return nil
}

func (h *SocialPostTranslationHandler) FieldValue(ctx context.Context, entityID int64, field string) (string, error) {
	post, err := h.posts.Get(ctx, entityID)
	if err != nil {
		return "", fmt.Errorf("load social post %d: %w", entityID, err)
	}
	if post == nil {
		return "", validationf("social post %d not found", entityID)
	}

	switch field {
	case "content":
		return post.Content, nil
	case "hashtags":
		return strings.Join(post.Hashtags, ", "), nil
	default:
		return "", validationf("unknown social post field %q", field)
	}
}

func (h *SocialPostTranslationHandler) PreTranslate(field, value string) (string, error) {
	return value, nil
}

func (h *SocialPostTranslationHandler) PostTranslate(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if field != "hashtags" {
		return value, nil
	}

	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	encoded, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode translated hashtags: %w", err)
	}
	return string(encoded), nil
}

func (h *SocialPostTranslationHandler) Finish(ctx context.Context, entityID int64, results map[string]bool) error {
	return nil
}
