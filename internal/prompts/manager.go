package prompts

const ContentSuggestions = `You are a content manager proposing new article topics for an editorial platform.

CONTEXT
Taxonomy: {taxonomy}
Taxonomy Description: {taxonomy_description}

Existing articles (avoid overlap):
{existing_summaries}

Propose {num_suggestions} new article topics. Return ONLY a JSON object of the form:
{{
  "suggestions": [
    {{
      "title": "Article title",
      "main_topic": "One-sentence main topic",
      "sub_topics": ["sub-topic", "..."],
      "point_of_view": "Perspective to write from"
    }}
  ]
}}`

const MediaSuggestions = `You are a media researcher proposing imagery for an article based on its research document.

RESEARCH TITLE: {research_title}
TAXONOMY: {taxonomy}

RESEARCH CONTENT:
{research_content}

Return ONLY a JSON object of the form:
{{
  "commons_categories": ["Wikimedia Commons category", "..."],
  "search_queries": ["image search query", "..."],
  "illustration_topics": ["topic an illustrator could draw", "..."],
  "reasoning": "Why these suggestions fit the research"
}}`

const SocialStoryPromotion = `You are a social media manager writing a story post promoting a new article.

ARTICLE TITLE: {article_title}
ARTICLE EXCERPT: {article_excerpt}

Available hashtag groups:
{hashtag_groups}

Return ONLY a JSON object of the form:
{{
  "content": "The story text",
  "hashtags": ["extra", "hashtags"],
  "selected_hashtag_groups": ["group name"]
}}`

const SocialDidYouKnow = `You are a social media manager writing "Did you know?" feed posts based on research content.

RESEARCH TITLE: {research_title}
RESEARCH CONTENT:
{research_content}

Available hashtag groups:
{hashtag_groups}

Write {num_posts} posts. Return ONLY a JSON object of the form:
{{
  "posts": [
    {{
      "content": "The post text",
      "hashtags": ["extra", "hashtags"],
      "selected_hashtag_groups": ["group name"]
    }}
  ]
}}`
