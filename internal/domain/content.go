package domain

import "time"

// Status is the editorial lifecycle shared by generated entities.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Suggestion is a proposed article topic awaiting research.
type Suggestion struct {
	ID          int64     `db:"id"`
	TaxonomyID  int64     `db:"taxonomy_id"`
	Title       string    `db:"title"`
	MainTopic   string    `db:"main_topic"`
	SubTopics   []string  `db:"-"`
	PointOfView string    `db:"point_of_view"`
	Status      Status    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	Generation
}

// Taxonomy classifies suggestions and decides the research flow. Short-form
// taxonomies (biographies, landmarks) get the condensed stage list.
type Taxonomy struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	ShortForm   bool   `db:"short_form"`
}

// Research is the long-form background material behind one Suggestion.
// It is owned exclusively by that Suggestion and cascade-deleted with it.
type Research struct {
	ID           int64     `db:"id"`
	SuggestionID int64     `db:"suggestion_id"`
	Content      string    `db:"content"`
	Status       Status    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	Generation
}

// Article is a published unit of content. Series membership is expressed by
// SeriesParentID/SeriesOrder: the parent has a nil order, children carry
// strictly increasing positive orders and point at the parent.
type Article struct {
	ID             int64      `db:"id"`
	ResearchID     int64      `db:"research_id"`
	Title          string     `db:"title"`
	Content        string     `db:"content"`
	Excerpt        string     `db:"excerpt"`
	AISummary      string     `db:"ai_summary"`
	Status         Status     `db:"status"`
	SeriesParentID *int64     `db:"series_parent_id"`
	SeriesOrder    *int       `db:"series_order"`
	PublishedAt    *time.Time `db:"published_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`

	Generation
}

// IsSeriesParent reports whether the article leads a series.
func (a *Article) IsSeriesParent() bool {
	return a.SeriesParentID == nil && a.SeriesOrder == nil
}

// Generation carries provenance for AI-generated records.
type Generation struct {
	Model               string     `db:"model"`
	GenerationStartedAt *time.Time `db:"generation_started_at"`
}

// HashtagGroup is a named pool of hashtags used by social post generation.
type HashtagGroup struct {
	ID       int64    `db:"id"`
	Name     string   `db:"name"`
	Hashtags []string `db:"-"`
	IsCore   bool     `db:"is_core"`
}

// MediaSuggestion proposes imagery queries for one Research.
type MediaSuggestion struct {
	ID                 int64     `db:"id"`
	ResearchID         int64     `db:"research_id"`
	CommonsCategories  []string  `db:"-"`
	SearchQueries      []string  `db:"-"`
	IllustrationTopics []string  `db:"-"`
	Reasoning          string    `db:"reasoning"`
	CreatedAt          time.Time `db:"created_at"`

	Generation
}

// PostType distinguishes social post placements.
type PostType string

const (
	PostTypeStory PostType = "story"
	PostTypeFeed  PostType = "feed"
)

// SocialPost is a generated social-media post promoting an Article.
type SocialPost struct {
	ID        int64      `db:"id"`
	ArticleID int64      `db:"article_id"`
	PostType  PostType   `db:"post_type"`
	Content   string     `db:"content"`
	Hashtags  []string   `db:"-"`
	Status    Status     `db:"status"`
	PostedAt  *time.Time `db:"posted_at"`
	CreatedAt time.Time  `db:"created_at"`

	Generation
}
