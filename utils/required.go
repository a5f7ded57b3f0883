package utils

// MissingFields reports which required keys are absent from a decoded JSON
// body. A key present with a JSON null counts as absent, matching the
// per-entity required-field sets enforced on create.
func MissingFields(body map[string]any, required ...string) []string {
	var missing []string
	for _, field := range required {
		if v, ok := body[field]; !ok || v == nil {
			missing = append(missing, field)
		}
	}
	return missing
}
