package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// parseJSONResponse parses a model response into out, running one repair
// pass over the named free-text field when the first parse fails. The repair
// collapses runs of whitespace inside that field's value, the usual defect
// in otherwise well-formed responses. A second parse failure is final.
func parseJSONResponse(text string, out any, repairField string) error {
	cleaned := cleanJSONFence(text)

	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}

	repaired := repairFieldWhitespace(cleaned, repairField)
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return validationf("response is not valid JSON after repair: %v", err)
	}
	return nil
}

func repairFieldWhitespace(text, field string) string {
	pattern := regexp.MustCompile(fmt.Sprintf(`"%s"\s*:\s*"([^"]*)"`, regexp.QuoteMeta(field)))
	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := pattern.FindStringSubmatch(match)
		collapsed := strings.Join(strings.Fields(sub[1]), " ")
		return fmt.Sprintf(`"%s": "%s"`, field, collapsed)
	})
}
