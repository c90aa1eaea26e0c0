package translation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fencedJSONRe    = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fencedRe        = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
	trailingCommaRe = regexp.MustCompile(`,\s*([\]}])`)
)

// ExtractCleanJSON recovers a JSON object from loosely structured model
// output. It strips ```json ... ``` (or plain ```) fencing when present,
// removes trailing commas before closing brackets and parses the result.
// Model output is not guaranteed well-formed; parse failures are reported as
// errors, never panics.
func ExtractCleanJSON(text string) (map[string]json.RawMessage, error) {
	text = strings.TrimSpace(text)
	// Some models quote the fence markers themselves.
	text = strings.ReplaceAll(text, `"`+"```json"+`"`, "```json")
	text = strings.ReplaceAll(text, `"`+"```"+`"`, "```")

	payload := text
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		payload = m[1]
	} else if m := fencedRe.FindStringSubmatch(text); m != nil {
		payload = m[1]
	}

	payload = trailingCommaRe.ReplaceAllString(payload, "$1")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return parsed, nil
}
