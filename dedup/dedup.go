// Package dedup implements the duplicate-folding strategies for merged
// libraries. Items arrive as decoded JSON objects from several source
// libraries; duplicates of the same title are grouped and the copy from the
// highest-priority source represents the group.
package dedup

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy selects how items are grouped.
type Strategy string

const (
	// ByProviderIDs groups by external metadata IDs (TMDB, IMDB, ...).
	ByProviderIDs Strategy = "provider_ids"
	// ByNameYear groups by normalized title plus release year.
	ByNameYear Strategy = "name_year"
	// ByNone disables grouping.
	ByNone Strategy = "none"
)

// providerPriority is the lookup order for provider keys. The first present
// key defines the group; remaining providers only matter as a fallback when
// none of these are set.
var providerPriority = []string{"tmdb", "imdb", "tvdb", "thetvdb", "themoviedb"}

// ParseStrategy validates a stored strategy string, defaulting to ByNone.
func ParseStrategy(s string) Strategy {
	switch Strategy(strings.ToLower(s)) {
	case ByProviderIDs:
		return ByProviderIDs
	case ByNameYear:
		return ByNameYear
	default:
		return ByNone
	}
}

// Source is one library's item list with its merge priority.
type Source struct {
	Priority int
	Items    []map[string]any
}

// Group is one deduplicated title: the representative shown to the client
// plus every copy that folded into it (the representative included).
type Group struct {
	Primary map[string]any
	Members []map[string]any
}

// Merge folds the sources' items into groups per the strategy. Sources are
// visited in priority order (highest first), so the first copy of each title
// is also the one from the highest-priority source; group order follows
// first sighting, which keeps repeated queries stable.
func Merge(strategy Strategy, sources []Source) []Group {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	var groups []Group
	index := make(map[string]int)
	for _, src := range ordered {
		for _, item := range src.Items {
			key, ok := groupKey(strategy, item)
			if !ok {
				groups = append(groups, Group{Primary: item, Members: []map[string]any{item}})
				continue
			}
			if at, seen := index[key]; seen {
				groups[at].Members = append(groups[at].Members, item)
				continue
			}
			index[key] = len(groups)
			groups = append(groups, Group{Primary: item, Members: []map[string]any{item}})
		}
	}
	return groups
}

// Primaries extracts the representative items in group order.
func Primaries(groups []Group) []map[string]any {
	out := make([]map[string]any, len(groups))
	for i, g := range groups {
		out[i] = g.Primary
	}
	return out
}

// groupKey computes the grouping key for one item. ok is false when the item
// cannot be grouped under the strategy and must stay unique.
func groupKey(strategy Strategy, item map[string]any) (string, bool) {
	switch strategy {
	case ByProviderIDs:
		return providerKey(item)
	case ByNameYear:
		return nameYearKey(item)
	default:
		return "", false
	}
}

// providerKey picks the first provider from the priority list, falling back
// to the lexicographically first provider present. Items without provider
// IDs are not grouped.
func providerKey(item map[string]any) (string, bool) {
	raw, ok := item["ProviderIds"].(map[string]any)
	if !ok || len(raw) == 0 {
		return "", false
	}
	ids := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			ids[strings.ToLower(k)] = strings.ToLower(s)
		}
	}
	for _, provider := range providerPriority {
		if v, ok := ids[provider]; ok {
			return provider + ":" + v, true
		}
	}
	keys := make([]string, 0, len(ids))
	for k := range ids {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Strings(keys)
	return keys[0] + ":" + ids[keys[0]], true
}

// nameYearKey groups by normalized name plus release year. The year comes
// from ProductionYear, else the leading year of PremiereDate; it is optional.
func nameYearKey(item map[string]any) (string, bool) {
	name, _ := item["Name"].(string)
	normalized := normalizeName(name)
	if normalized == "" {
		return "", false
	}
	return normalized + "|" + yearOf(item), true
}

// normalizeName lowers a title to its alphanumeric skeleton, so "The Thing!"
// and "the thing" collide.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func yearOf(item map[string]any) string {
	if y, ok := item["ProductionYear"].(float64); ok && y > 0 {
		return fmt.Sprintf("%d", int(y))
	}
	if d, ok := item["PremiereDate"].(string); ok && len(d) >= 4 {
		return d[:4]
	}
	return ""
}
