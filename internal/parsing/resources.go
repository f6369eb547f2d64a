package parsing

import (
	"encoding/json"
	"strings"

	"github.com/IshanviChauhan/Interview-Bot/internal/llm"
	"github.com/IshanviChauhan/Interview-Bot/internal/schemas"
	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

// ParseResources recovers a resource list from model output. It first
// attempts a strict JSON-array parse validated against the resource list
// schema; on any failure it falls back to line-based parsing with
// "title - url" as the separator, defaulting url to empty when absent.
// Title and url strings are passed through unmodified: the presentation
// boundary decides whether a non-http(s) url renders as a link.
// fallback reports that the strict path was abandoned.
func ParseResources(text string) (resources []types.Resource, fallback bool) {
	cleaned := llm.CleanJSONBlock(text)

	if err := schemas.ValidateResourceList(cleaned); err == nil {
		var parsed []types.Resource
		if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
			return parsed, false
		}
	}

	return parseResourceLines(text), true
}

// parseResourceLines is the degraded path: one resource per non-empty
// line, split once on " - ".
func parseResourceLines(text string) []types.Resource {
	var resources []types.Resource
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if line == "" {
			continue
		}

		title, url := line, ""
		if parts := strings.SplitN(line, " - ", 2); len(parts) == 2 {
			title = strings.TrimSpace(parts[0])
			url = strings.TrimSpace(parts[1])
		}
		if title == "" {
			continue
		}
		resources = append(resources, types.Resource{Title: title, URL: url})
	}
	return resources
}
