package controllers

// Helpers for working with request bodies decoded as generic JSON maps.
// Create handlers check required keys against the decoded map, then pull
// typed values out of it; update handlers forward only the keys the client
// actually sent, so unspecified fields keep their stored value.

func strField(body map[string]any, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

func uintField(body map[string]any, key string) uint {
	switch v := body[key].(type) {
	case float64:
		return uint(v)
	case int:
		return uint(v)
	}
	return 0
}

func optUintField(body map[string]any, key string) *uint {
	if body[key] == nil {
		return nil
	}
	u := uintField(body, key)
	return &u
}

func optStrField(body map[string]any, key string) *string {
	if v, ok := body[key].(string); ok {
		return &v
	}
	return nil
}

func intField(body map[string]any, key string) int {
	if v, ok := body[key].(float64); ok {
		return int(v)
	}
	return 0
}

func floatField(body map[string]any, key string) float64 {
	if v, ok := body[key].(float64); ok {
		return v
	}
	return 0
}

// pick copies the listed columns out of the body, keeping only keys the
// client sent. The result feeds gorm's Updates, which is what makes partial
// updates leave absent fields untouched.
func pick(body map[string]any, columns ...string) map[string]any {
	updates := map[string]any{}
	for _, col := range columns {
		if v, ok := body[col]; ok {
			updates[col] = v
		}
	}
	return updates
}
