package store

import (
	"encoding/json"

	"folio/models"
)

// The stored document may predate the current schema: social links used to be
// bare strings, skills and highlights lacked the visible flag, and whole
// sections can be missing. Migration reconciles any of those shapes into the
// current one. Each step is idempotent, so migrating twice is the same as
// migrating once.

type migration func(doc map[string]any, def models.PortfolioData)

var migrations = []migration{
	migrateSocial,
	migrateSkills,
	migrateAbout,
	migrateItemVisibility,
}

// Migrate parses raw persisted JSON and reconciles it into the current
// schema. The default document acts as a schema floor: any field the stored
// data does not supply comes from the defaults.
func Migrate(raw []byte) (models.PortfolioData, error) {
	def := models.DefaultPortfolioData()

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return def, err
	}

	defMap := toMap(def)
	doc := deepMerge(defMap, parsed)

	// The social migration has its own per-key defaulting rules (an object
	// without a visible flag becomes visible, regardless of what the default
	// entry says), so it runs against the raw parsed value.
	if social, ok := parsed["social"]; ok && social != nil {
		doc["social"] = social
	}

	for _, m := range migrations {
		m(doc, def)
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return def, err
	}

	var out models.PortfolioData
	if err := json.Unmarshal(merged, &out); err != nil {
		return def, err
	}
	return out, nil
}

func toMap(v any) map[string]any {
	raw, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	return m
}

// deepMerge overlays src onto base. Maps merge recursively, everything else
// (including arrays) replaces. Explicit nulls in src are ignored so a stored
// null never knocks out a default.
func deepMerge(base, src map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range src {
		if v == nil {
			continue
		}
		if srcMap, ok := v.(map[string]any); ok {
			if baseMap, ok := out[k].(map[string]any); ok {
				out[k] = deepMerge(baseMap, srcMap)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// visibleOr reads a visible flag, defaulting to true when absent or not a
// bool. An explicit false survives.
func visibleOr(m map[string]any) bool {
	if v, ok := m["visible"].(bool); ok {
		return v
	}
	return true
}

// migrateSocial wraps bare-string links as {url, visible:true}, defaults the
// visible flag on object links, and substitutes the default entry for any of
// the fixed platform keys that is missing or unrecognizable.
func migrateSocial(doc map[string]any, def models.PortfolioData) {
	social, _ := doc["social"].(map[string]any)
	if social == nil {
		social = make(map[string]any)
	}

	result := make(map[string]any, len(models.SocialPlatforms))
	for _, key := range models.SocialPlatforms {
		switch v := social[key].(type) {
		case string:
			result[key] = map[string]any{"url": v, "visible": true}
		case map[string]any:
			if url, ok := v["url"].(string); ok {
				result[key] = map[string]any{"url": url, "visible": visibleOr(v)}
				continue
			}
			result[key] = toMap(def.Social[key])
		default:
			result[key] = toMap(def.Social[key])
		}
	}
	doc["social"] = result
}

// migrateSkills backfills the visible flag on leveled skills and wraps bare
// strings in the other category.
func migrateSkills(doc map[string]any, def models.PortfolioData) {
	skills, ok := doc["skills"].(map[string]any)
	if !ok {
		doc["skills"] = toMap(def.Skills)
		return
	}

	for _, category := range []string{"programming", "frontend", "backend", "tools"} {
		items, ok := skills[category].([]any)
		if !ok {
			continue
		}
		for i, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			items[i] = map[string]any{
				"name":    m["name"],
				"level":   m["level"],
				"visible": visibleOr(m),
			}
		}
	}

	if other, ok := skills["other"].([]any); ok {
		for i, item := range other {
			switch v := item.(type) {
			case string:
				other[i] = map[string]any{"name": v, "visible": true}
			case map[string]any:
				other[i] = map[string]any{"name": v["name"], "visible": visibleOr(v)}
			}
		}
	}
}

// migrateAbout backfills the visible flag on about highlights.
func migrateAbout(doc map[string]any, def models.PortfolioData) {
	about, ok := doc["about"].(map[string]any)
	if !ok {
		doc["about"] = toMap(def.About)
		return
	}

	// Defaults substitute only when highlights is missing or not an array.
	// A deliberately emptied list stays empty.
	highlights, ok := about["highlights"].([]any)
	if !ok {
		raw, _ := json.Marshal(def.About.Highlights)
		var defHighlights []any
		_ = json.Unmarshal(raw, &defHighlights)
		about["highlights"] = defHighlights
		return
	}

	for i, item := range highlights {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		highlights[i] = map[string]any{
			"label":   m["label"],
			"value":   m["value"],
			"visible": visibleOr(m),
		}
	}
}

// migrateItemVisibility adds visible:true to any collection item lacking the
// flag explicitly.
func migrateItemVisibility(doc map[string]any, def models.PortfolioData) {
	for _, collection := range []string{"projects", "experience", "education", "certifications", "achievements"} {
		items, ok := doc[collection].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if _, ok := m["visible"]; !ok {
				m["visible"] = true
			}
		}
	}
}
