package handler

import (
	"context"
	"strings"

	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/idmap"
	"github.com/jellyswarrm/jellyswarrm/jsonwalk"
)

// idKeyExclusions are field keys that end in "id" but do not carry media IDs
// and must round-trip verbatim: device fingerprints, user IDs (substituted
// separately), the proxy's own server ID, and transcoder play-session IDs
// that byte-stream routing depends on.
var idKeyExclusions = map[string]bool{
	"deviceid":      true,
	"userid":        true,
	"serverid":      true,
	"playsessionid": true,
}

// virtualizeTree rewrites one upstream JSON response for the client: every
// upstream media ID becomes its virtual counterpart, upstream server IDs
// become the proxy's, the session's remote user ID becomes the virtual user
// ID, and item names optionally gain a " [ServerName]" suffix.
//
// The tree is pre-scanned so existing mappings load with one query; only
// genuinely new IDs pay for inserts.
func (d *Deps) virtualizeTree(ctx context.Context, tree any, server *ent.Server, remoteUserID, virtualUserID string) (any, error) {
	remoteUserID = idmap.Normalize(remoteUserID)

	d.prewarm(ctx, tree, server, remoteUserID)

	suffix := ""
	if d.Cfg.IncludeServerNameInMedia && server != nil {
		suffix = " [" + server.Name + "]"
	}

	var walkErr error
	tree, _ = jsonwalk.Walk(tree, func(wctx *jsonwalk.Context, value any) (jsonwalk.Directive, error) {
		s, isString := value.(string)
		if !isString || s == "" {
			return jsonwalk.Keep(), nil
		}
		key := strings.ToLower(wctx.Key)

		switch {
		case key == "serverid":
			return jsonwalk.Replace(d.Cfg.ServerID), nil

		case key == "userid":
			if virtualUserID != "" && idmap.Normalize(s) == remoteUserID {
				return jsonwalk.Replace(virtualUserID), nil
			}
			return jsonwalk.Keep(), nil

		case remoteUserID != "" && virtualUserID != "" && idmap.Normalize(s) == remoteUserID:
			// The remote user ID leaks through fields like User.Id.
			return jsonwalk.Replace(virtualUserID), nil

		case (isMediaIDKey(key) || isImageTag(wctx)) && idmap.IsIDLike(s):
			vid, err := d.IDs.Virtualize(ctx, s, server)
			if err != nil {
				walkErr = err
				return jsonwalk.Keep(), nil
			}
			return jsonwalk.Replace(vid), nil

		case suffix != "" && (key == "name" || key == "seriesname") && isMediaItem(wctx.Parent):
			if strings.HasSuffix(s, suffix) {
				return jsonwalk.Keep(), nil
			}
			return jsonwalk.Replace(s + suffix), nil
		}
		return jsonwalk.Keep(), nil
	})
	return tree, walkErr
}

// prewarm collects every media-ID candidate in the tree and loads existing
// mappings in one round-trip.
func (d *Deps) prewarm(ctx context.Context, tree any, server *ent.Server, remoteUserID string) {
	var ids []string
	_, _ = jsonwalk.Walk(tree, func(wctx *jsonwalk.Context, value any) (jsonwalk.Directive, error) {
		s, isString := value.(string)
		if !isString || s == "" {
			return jsonwalk.Keep(), nil
		}
		if (isMediaIDKey(strings.ToLower(wctx.Key)) || isImageTag(wctx)) && idmap.IsIDLike(s) && idmap.Normalize(s) != remoteUserID {
			ids = append(ids, s)
		}
		return jsonwalk.Keep(), nil
	})
	_ = d.IDs.Prewarm(ctx, server, ids)
}

// isMediaIDKey reports whether a lower-cased field key carries a media ID:
// Id, ItemId, SeriesId, ParentId, SeasonId, AlbumId, Etag and friends.
func isMediaIDKey(key string) bool {
	if key == "etag" {
		return true
	}
	return strings.HasSuffix(key, "id") && !idKeyExclusions[key]
}

// isImageTag reports whether a field lives inside an image-tag container.
// Image tags are upstream etags; clients echo them back in the Tag query
// parameter, so they go through the mapping store like any other ID.
func isImageTag(wctx *jsonwalk.Context) bool {
	parent := wctx.ParentPath
	if i := strings.LastIndexByte(parent, '.'); i >= 0 {
		parent = parent[i+1:]
	}
	switch strings.ToLower(strings.TrimRight(parent, "[0123456789]")) {
	case "imagetags", "backdropimagetags", "parentbackdropimagetags", "screenshotimagetags":
		return true
	}
	return false
}

// isMediaItem reports whether an object looks like a Jellyfin item DTO; only
// those get the server-name suffix. Item DTOs always carry a Type string
// ("Movie", "Series", ...); user and session DTOs do not.
func isMediaItem(parent map[string]any) bool {
	if parent == nil {
		return false
	}
	t, ok := parent["Type"].(string)
	return ok && t != ""
}
