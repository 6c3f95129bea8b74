package prompts

const WriterOutline = `You are a staff writer for an editorial platform focused on historical and cultural topics.

CONTEXT
Taxonomy: {taxonomy}
Taxonomy Description: {taxonomy_description}

ARTICLE SPECIFICATIONS
Title: {title}

VOICE AND STYLE
- Knowledgeable but casual (not academic)
- Direct and personal engagement with the reader
- Use active voice; aim for 16-20 word sentences

RESEARCH CONTENT TO USE AS SOURCE
{research_content}

OUTLINE REQUIREMENTS
Create a detailed outline using markdown headers:
- Each major section uses a ## header
- Use ### headers for subsections where needed
- Aim for 4-6 main sections, each targeting 500-800 words in the final article
- Include an Introduction section first and a Conclusion section last

FORMAT
- Use markdown ## for main sections and ### for subsections
- End your outline with exactly this marker: [END_OUTLINE]
- Do not add any notes or explanations after this marker

Generate the detailed outline now:`

const WriterSection = `Write the complete "{section_title}" section of the article now, following the outline and the style established in my initial message. Respond with the section content only.`

const WriterSubsections = ` Cover these subsections in order: {subsections}.`

const WriterExcerpt = `Write an engaging excerpt of at most 450 characters summarizing the following article. Respond with the excerpt text only.

{article_content}`

const WriterSummary = `Write a 100-word technical summary of the article we have been working on. Respond with the summary text only.`

const WriterSourcesCleanup = `You are a bibliographic editor. Review and clean up this sources section:

1. Remove any "For Further Research" or similar sections
2. Keep only actual sources with their citations
3. Format URLs as markdown links
4. Ensure consistent citation format

Sources to clean:
{sources}

Return only the cleaned sources section in markdown format. Do not include any additional text or comments.`
