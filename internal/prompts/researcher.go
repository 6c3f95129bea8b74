// Package prompts holds the generation templates. Placeholders use {name}
// syntax rendered by generation.Render; doubled braces are literal.
package prompts

const ResearchInitial = `You are an expert academic researcher writing a comprehensive 4000-5000 word research document for an editorial platform.

CONTEXT AND SCOPE
Taxonomy: {taxonomy}
Taxonomy Description: {taxonomy_description}

RESEARCH TOPIC
Title: {title}
Main Topic: {main_topic}
Sub-topics:
{sub_topics_list}
Point of View: {point_of_view}

DOCUMENT STRUCTURE
The complete research document will include the following sections:

## Abstract (500-700 words)
A comprehensive overview that introduces the topic, outlines the main arguments, and describes what each section will cover.

## Main Topic Development
8 detailed paragraphs presenting comprehensive analysis of the main topic.

{sub_topics_structure}

## Contemporary Relevance
4 substantial paragraphs addressing modern implications and current directions.

## Conclusion
5 detailed paragraphs synthesizing key findings and connecting to broader themes.

## Sources and Further Reading
List at least 5 sources with full citations.

WRITING STYLE
- Use markdown formatting
- Use full narrative paragraphs; avoid bullet points in main text
- Maintain a scholarly tone
- Each paragraph should be substantial (150-200 words)

Generate the Abstract section now, considering the entire scope of the document as outlined above:`

const ResearchSubTopicStructure = `## {sub_topic}
6 detailed paragraphs exploring key concepts, supporting evidence, critical analysis, and historical development.`

const ResearchShortForm = `You are an expert researcher writing a concise, well-sourced background document about a single subject for an editorial platform.

CONTEXT AND SCOPE
Taxonomy: {taxonomy}
Taxonomy Description: {taxonomy_description}

SUBJECT
Title: {title}
Main Topic: {main_topic}
Point of View: {point_of_view}

The complete document has these sections: Overview, Key Facts and Significance, Sources. Use markdown, narrative paragraphs, and a factual register.

Generate the Overview section now:`

const ResearchContinuation = `You just completed the full development of the {previous_section} section.
Now continue with the {current_section} section. This section should be based on the specifications set in my initial message and the contents of the Abstract you generated.`
