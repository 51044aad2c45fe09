package preprocess

import (
	"strings"

	"github.com/jellyswarrm/jellyswarrm/jsonwalk"
)

// Analysis holds routing hints extracted from a JSON request body with a
// read-only walk. First occurrence wins for each field.
type Analysis struct {
	// UserID is an embedded UserId value (virtual on the way in).
	UserID string
	// MediaSourceID is an embedded MediaSourceId, typically in PlaybackInfo
	// bodies. Virtual on the way in.
	MediaSourceID string
	// ItemID is a root-level Id or ItemId value.
	ItemID string
	// ProviderIDs collects entries of any ProviderIds object, lower-cased
	// keys.
	ProviderIDs map[string]string
}

// Analyze walks a decoded JSON body and accumulates hints. The tree is not
// modified.
func Analyze(root any) Analysis {
	var a Analysis
	_, _ = jsonwalk.Walk(root, func(ctx *jsonwalk.Context, value any) (jsonwalk.Directive, error) {
		s, isString := value.(string)
		if !isString || s == "" {
			return jsonwalk.Keep(), nil
		}
		switch {
		case strings.EqualFold(ctx.Key, "userid"):
			if a.UserID == "" {
				a.UserID = s
			}
		case strings.EqualFold(ctx.Key, "mediasourceid"):
			if a.MediaSourceID == "" {
				a.MediaSourceID = s
			}
		case ctx.Depth == 0 && (strings.EqualFold(ctx.Key, "id") || strings.EqualFold(ctx.Key, "itemid")):
			if a.ItemID == "" {
				a.ItemID = s
			}
		case strings.EqualFold(lastSegment(ctx.ParentPath), "providerids"):
			if a.ProviderIDs == nil {
				a.ProviderIDs = make(map[string]string)
			}
			a.ProviderIDs[strings.ToLower(ctx.Key)] = s
		}
		return jsonwalk.Keep(), nil
	})
	return a
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
