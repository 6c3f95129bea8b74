package generation

import (
	"strings"
)

// FieldKind selects which translation template a field uses. Metadata
// templates assume short plain values; content templates assume long
// markdown text whose formatting must survive verbatim.
type FieldKind int

const (
	FieldMetadata FieldKind = iota
	FieldContent
)

// Render fills a named-placeholder template. Placeholders look like {name};
// doubled braces ({{ and }}) are literals, so JSON examples embedded in
// prompts render untouched. A referenced variable that is absent from vars
// yields a MissingVariableError naming the key; an unterminated placeholder
// yields a RenderError.
func Render(template string, vars map[string]string) (string, error) {
	normalized := strings.ReplaceAll(template, `\n`, "\n")

	var b strings.Builder
	b.Grow(len(normalized))

	for i := 0; i < len(normalized); {
		ch := normalized[i]
		switch ch {
		case '{':
			if i+1 < len(normalized) && normalized[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(normalized[i:], '}')
			if end < 0 {
				return "", &RenderError{Reason: "unterminated placeholder"}
			}
			name := normalized[i+1 : i+end]
			if name == "" || strings.ContainsAny(name, " \n\t") {
				return "", &RenderError{Reason: "malformed placeholder {" + name + "}"}
			}
			value, ok := vars[name]
			if !ok {
				return "", &MissingVariableError{Name: name}
			}
			b.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(normalized) && normalized[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			b.WriteByte('}')
			i++
		default:
			b.WriteByte(ch)
			i++
		}
	}

	return b.String(), nil
}
