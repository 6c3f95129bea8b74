package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/prompts"
)

// SocialWriter generates social posts promoting articles and research.
type SocialWriter struct {
	client   Generator
	articles ArticleStore
	research ResearchStore
	hashtags HashtagGroupStore
	posts    SocialPostStore
	logger   *slog.Logger
}

func NewSocialWriter(
	client Generator,
	articles ArticleStore,
	research ResearchStore,
	hashtags HashtagGroupStore,
	posts SocialPostStore,
	logger *slog.Logger,
) *SocialWriter {
	return &SocialWriter{
		client:   client,
		articles: articles,
		research: research,
		hashtags: hashtags,
		posts:    posts,
		logger:   logger.With("service", "social"),
	}
}

type socialPostEntry struct {
	Content               string   `json:"content"`
	Hashtags              []string `json:"hashtags"`
	SelectedHashtagGroups []string `json:"selected_hashtag_groups"`
}

type feedPostsResponse struct {
	Posts []socialPostEntry `json:"posts"`
}

// PromoteArticle writes one story post for an approved article.
func (s *SocialWriter) PromoteArticle(ctx context.Context, articleID int64) (*domain.SocialPost, error) {
	article, err := s.articles.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article %d: %w", articleID, err)
	}
	if article == nil {
		return nil, validationf("article %d not found", articleID)
	}
	if article.Status != domain.StatusApproved {
		return nil, validationf("article %d is not approved", articleID)
	}

	pools, groupText, err := s.hashtagContext(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := generation.Render(prompts.SocialStoryPromotion, map[string]string{
		"article_title":   article.Title,
		"article_excerpt": article.Excerpt,
		"hashtag_groups":  groupText,
	})
	if err != nil {
		return nil, fmt.Errorf("render story prompt: %w", err)
	}

	startedAt := time.Now().UTC()
	result, err := s.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("generate story post: %w", err)
	}

	var entry socialPostEntry
	if err := parseJSONResponse(result.Text, &entry, "content"); err != nil {
		return nil, err
	}
	if entry.Content == "" {
		return nil, validationf("story post has no content")
	}

	post := &domain.SocialPost{
		ArticleID: articleID,
		PostType:  domain.PostTypeStory,
		Content:   entry.Content,
		Hashtags:  s.assembleHashtags(entry, pools),
		Status:    domain.StatusPending,
		Generation: domain.Generation{
			Model:               s.client.Model(),
			GenerationStartedAt: &startedAt,
		},
	}

	if err := s.posts.CreateBatch(ctx, []*domain.SocialPost{post}); err != nil {
		return nil, fmt.Errorf("persist story post: %w", err)
	}

	s.logger.Info("story post generated", "article_id", articleID)
	return post, nil
}

// GenerateFeedPosts writes count "Did you know?" feed posts from the
// research behind an article.
func (s *SocialWriter) GenerateFeedPosts(ctx context.Context, articleID int64, count int) ([]*domain.SocialPost, error) {
	if count < 1 {
		return nil, validationf("post count must be positive, got %d", count)
	}

	article, err := s.articles.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article %d: %w", articleID, err)
	}
	if article == nil {
		return nil, validationf("article %d not found", articleID)
	}
	if article.Status != domain.StatusApproved {
		return nil, validationf("article %d is not approved", articleID)
	}

	research, err := s.research.Get(ctx, article.ResearchID)
	if err != nil {
		return nil, fmt.Errorf("load research %d: %w", article.ResearchID, err)
	}
	if research == nil {
		return nil, validationf("research %d not found", article.ResearchID)
	}

	pools, groupText, err := s.hashtagContext(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := generation.Render(prompts.SocialDidYouKnow, map[string]string{
		"research_title":   article.Title,
		"research_content": research.Content,
		"hashtag_groups":   groupText,
		"num_posts":        strconv.Itoa(count),
	})
	if err != nil {
		return nil, fmt.Errorf("render feed posts prompt: %w", err)
	}

	startedAt := time.Now().UTC()
	result, err := s.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("generate feed posts: %w", err)
	}

	var parsed feedPostsResponse
	if err := parseJSONResponse(result.Text, &parsed, "content"); err != nil {
		return nil, err
	}
	if len(parsed.Posts) == 0 {
		return nil, validationf("feed posts response contains no posts")
	}

	posts := make([]*domain.SocialPost, 0, len(parsed.Posts))
	for _, entry := range parsed.Posts {
		if entry.Content == "" {
			return nil, validationf("feed post entry has no content")
		}
		posts = append(posts, &domain.SocialPost{
			ArticleID: articleID,
			PostType:  domain.PostTypeFeed,
			Content:   entry.Content,
			Hashtags:  s.assembleHashtags(entry, pools),
			Status:    domain.StatusPending,
			Generation: domain.Generation{
				Model:               s.client.Model(),
				GenerationStartedAt: &startedAt,
			},
		})
	}

	if err := s.posts.CreateBatch(ctx, posts); err != nil {
		return nil, fmt.Errorf("persist feed posts: %w", err)
	}

	s.logger.Info("feed posts generated", "article_id", articleID, "count", len(posts))
	return posts, nil
}

// hashtagPools holds the loaded hashtag groups for one generation run. Core
// tags are always attached to every post; optional groups are offered to the
// model by name.
type hashtagPools struct {
	core     []string
	optional map[string][]string
}

func (s *SocialWriter) hashtagContext(ctx context.Context) (*hashtagPools, string, error) {
	core, err := s.hashtags.Core(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load core hashtag groups: %w", err)
	}
	optional, err := s.hashtags.Optional(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load optional hashtag groups: %w", err)
	}

	pools := &hashtagPools{optional: make(map[string][]string, len(optional))}
	for _, group := range core {
		pools.core = append(pools.core, group.Hashtags...)
	}

	var text strings.Builder
	for _, group := range optional {
		pools.optional[group.Name] = group.Hashtags
		fmt.Fprintf(&text, "- %s: %s\n", group.Name, strings.Join(group.Hashtags, " "))
	}
	if text.Len() == 0 {
		text.WriteString("(none)")
	}

	return pools, strings.TrimRight(text.String(), "\n"), nil
}

// assembleHashtags merges core tags, the model's selected optional groups,
// and the model's own extra tags, deduplicated in that order.
func (s *SocialWriter) assembleHashtags(entry socialPostEntry, pools *hashtagPools) []string {
	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, tag := range pools.core {
		add(tag)
	}
	for _, name := range entry.SelectedHashtagGroups {
		for _, tag := range pools.optional[name] {
			add(tag)
		}
	}
	for _, tag := range entry.Hashtags {
		add(tag)
	}

	return tags
}
