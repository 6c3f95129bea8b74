package prompts

const SeriesSplit = `You are an expert editor breaking down a long article into a series of shorter, interconnected pieces.
Your task is to analyze this content and propose how to split it into {num_parts} cohesive articles.

Your response should be a JSON array containing {num_parts} article objects.
Each object must have:
- title: Unique, descriptive title (not "Part 1", "Part 2")
- excerpt: Engaging 450-character summary of this specific article's content
- ai_summary: 100-word technical summary of this article's focus and contents
- sections: List of section titles from the original content that should be included in this article

IMPORTANT: Return ONLY the JSON array. Do not include any other text, comments, or explanations.

Content to analyze:
{content}`

const SeriesIntroConclusion = `You are writing one article in a series about {series_title}:

Title: {title}
Excerpt: {excerpt}

You already completed the main content for this article:
{section_text}

Write a strong introduction and conclusion that make this piece a standalone article while acknowledging it is part of a series. The introduction should hook the reader, establish this article's focus, and preview the main points (3-4 paragraphs). The conclusion should summarize the key points and point the reader toward the related articles (3-4 paragraphs).

For additional context, here are the titles and excerpts of the other articles in the series:
{other_articles}

Return ONLY a JSON object with two keys:
{{
    "introduction": "The introduction text...",
    "conclusion": "The conclusion text..."
}}

Generate the introduction and conclusion now:`

const ReadabilityInitial = `You are a proofreader specializing in improving readability. You fix grammatical issues, reduce passive voice, shorten long sentences, and correct punctuation problems. You retain the original meaning and style, but ensure the text is more direct and clear.

Your task is to proofread and correct a full article. To ensure that you stay focused, we will make the corrections one paragraph at a time.

We are going to start with the first paragraph. Here it is:

{chunk_text}

Please proofread this paragraph and respond with only the corrected paragraph text. Do not include any additional text or comments.`

const ReadabilityContinuation = `Let's continue with the next paragraph. Please proofread and correct it as needed, keeping in mind the instructions at the beginning of our conversation. Respond with only the corrected paragraph text.

{chunk_text}`
