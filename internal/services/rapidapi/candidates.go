package rapidapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/denisAlshanov/clipgrab/internal/models"
)

// decodeCandidates turns raw format entries into candidates. Non-object
// entries are dropped; fields of the wrong type are treated as absent.
func decodeCandidates(raw []json.RawMessage) []models.FormatCandidate {
	candidates := make([]models.FormatCandidate, 0, len(raw))
	for _, entry := range raw {
		var fields map[string]interface{}
		if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
			continue
		}
		candidates = append(candidates, decodeCandidate(fields))
	}
	return candidates
}

func decodeCandidate(fields map[string]interface{}) models.FormatCandidate {
	candidate := models.FormatCandidate{}
	if url := stringField(fields, "url"); url != nil {
		candidate.URL = *url
	}
	candidate.QualityLabel = stringField(fields, "qualityLabel")
	candidate.MimeType = stringField(fields, "mimeType")
	candidate.Container = stringField(fields, "container")
	candidate.HasVideo = boolField(fields, "hasVideo")
	candidate.HasAudio = boolField(fields, "hasAudio")
	candidate.Itag = intField(fields, "itag")
	return candidate
}

func stringField(fields map[string]interface{}, key string) *string {
	value, ok := fields[key].(string)
	if !ok {
		return nil
	}
	return &value
}

func boolField(fields map[string]interface{}, key string) *bool {
	value, ok := fields[key].(bool)
	if !ok {
		return nil
	}
	return &value
}

func intField(fields map[string]interface{}, key string) *int {
	switch value := fields[key].(type) {
	case float64:
		n := int(value)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return &n
		}
	}
	return nil
}
