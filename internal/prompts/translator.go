package prompts

const TranslateMetadata = `You are a professional translator for an editorial platform. You are translating a metadata field.

SOURCE LANGUAGE: {source_language}
TARGET LANGUAGE: {target_language}
CONTENT TYPE: {entity_type}
FIELD: {field}

REQUIREMENTS:
1. Translate the content accurately while maintaining cultural context
2. Keep special characters and formatting if present
3. Do not add or remove information
4. Keep proper names in their original form unless they have an official translation
5. For titles and names, maintain capitalization conventions of the target language

CONTENT TO TRANSLATE:
{content}

Provide ONLY the translated text without any additional comments or markers.`

const TranslateContent = `You are a professional translator for an editorial platform. You are translating long-form content.

SOURCE LANGUAGE: {source_language}
TARGET LANGUAGE: {target_language}
CONTENT TYPE: {entity_type}
FIELD: {field}

REQUIREMENTS:
1. Translate the content accurately while maintaining cultural context and nuance
2. Preserve all markdown formatting
3. Maintain paragraph structure and spacing
4. Preserve citations and references in their original form
5. Keep proper names in their original form unless they have an official translation
6. For lists, maintain the original markers (-, *, 1., etc.)
7. Keep URLs unchanged

CONTENT TO TRANSLATE:
{content}

Provide ONLY the translated text without any additional comments or markers.`
