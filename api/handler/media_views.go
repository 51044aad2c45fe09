package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/dedup"
	"github.com/jellyswarrm/jellyswarrm/ent"
	entmergedlibrary "github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/preprocess"
)

// UserViews handles /Users/{id}/Views and /UserViews: the federated union of
// every server's libraries, with one synthetic CollectionFolder prepended per
// visible merged library.
func (d *Deps) UserViews(c *gin.Context) {
	res := d.preprocessOrAbort(c)
	if res == nil {
		return
	}
	if res.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	ctx := c.Request.Context()

	libs, err := d.DB.MergedLibrary.Query().
		Where(entmergedlibrary.IsGlobal(true)).
		Order(ent.Asc(entmergedlibrary.FieldName)).
		All(ctx)
	if err != nil {
		slog.Warn("merged library lookup failed", "error", err)
	}
	injected := make([]any, 0, len(libs))
	for _, lib := range libs {
		injected = append(injected, d.mergedLibraryView(lib))
	}

	// Unlike the generic federated endpoints, an authenticated views request
	// with every upstream down answers with zero items so clients keep their
	// home screen instead of erroring out.
	branches := d.fanOut(ctx, res, res.Sessions)

	// Server views keep their per-server order; merged libraries go first.
	items := injected
	for _, b := range branches {
		items = append(items, b.items...)
	}

	if len(branches) > 0 && branches[0].tree == nil {
		c.JSON(http.StatusOK, items)
		return
	}
	out := gin.H{}
	if len(branches) > 0 {
		for k, v := range branches[0].tree {
			out[k] = v
		}
	}
	out["Items"] = items
	out["TotalRecordCount"] = len(items)
	out["StartIndex"] = 0
	c.JSON(http.StatusOK, out)
}

// mergedLibraryView builds the CollectionFolder DTO a merged library
// presents as, shaped like a native Jellyfin view.
func (d *Deps) mergedLibraryView(lib *ent.MergedLibrary) map[string]any {
	collectionType := string(lib.CollectionType)
	if collectionType == "mixed" {
		collectionType = "folders"
	}

	var sortName strings.Builder
	for _, r := range strings.ToLower(lib.Name) {
		if r == ' ' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sortName.WriteRune(r)
		}
	}

	return map[string]any{
		"Name":                     lib.Name,
		"ServerId":                 d.Cfg.ServerID,
		"Id":                       lib.VirtualID,
		"Etag":                     lib.VirtualID,
		"DateCreated":              lib.CreatedAt.UTC().Format(time.RFC3339Nano),
		"CanDelete":                false,
		"CanDownload":              false,
		"SortName":                 sortName.String(),
		"ExternalUrls":             []any{},
		"EnableMediaSourceDisplay": true,
		"ProviderIds":              map[string]any{},
		"IsFolder":                 true,
		"Type":                     "CollectionFolder",
		"CollectionType":           collectionType,
		"DisplayPreferencesId":     lib.VirtualID,
		"Tags":                     []any{"merged"},
		"ImageTags":                map[string]any{},
		"BackdropImageTags":        []any{},
		"UserData": map[string]any{
			"PlaybackPositionTicks": 0,
			"PlayCount":             0,
			"IsFavorite":            false,
			"Played":                false,
			"Key":                   lib.VirtualID,
			"ItemId":                "00000000000000000000000000000000",
		},
	}
}

// mergedLibraryTarget reports whether the request's ParentId names a merged
// library.
func (d *Deps) mergedLibraryTarget(ctx context.Context, res *preprocess.Result) *ent.MergedLibrary {
	parent := queryFold(res.Query, "ParentId")
	if !strings.HasPrefix(parent, "merged-") {
		return nil
	}
	lib, err := d.DB.MergedLibrary.Query().
		Where(entmergedlibrary.VirtualID(parent)).
		Only(ctx)
	if err != nil {
		return nil
	}
	return lib
}

// includeTypesFor maps a merged library's collection type to the item kinds
// requested from its sources.
func includeTypesFor(collectionType string) string {
	switch collectionType {
	case "movies":
		return "Movie"
	case "tvshows":
		return "Series"
	case "music":
		return "MusicAlbum,Audio"
	case "books":
		return "Book,AudioBook"
	default:
		return "Movie,Series,MusicAlbum,Audio,Book"
	}
}

// mergedLibraryItems answers an items query whose ParentId is a merged
// library: each source library is queried recursively on its own server,
// responses are virtualized, and the configured strategy collapses
// duplicates, the highest-priority source winning as primary.
func (d *Deps) mergedLibraryItems(c *gin.Context, res *preprocess.Result, lib *ent.MergedLibrary) {
	ctx := c.Request.Context()
	vuid := virtualUserID(res.User)

	sources, err := lib.QuerySources().WithServer().All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	sort.SliceStable(sources, func(i, j int) bool { return sources[i].Priority > sources[j].Priority })
	if len(sources) == 0 {
		c.JSON(http.StatusOK, gin.H{"Items": []any{}, "TotalRecordCount": 0, "StartIndex": 0})
		return
	}

	includeTypes := includeTypesFor(string(lib.CollectionType))

	collected := make([][]map[string]any, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		srv := src.Edges.Server
		if srv == nil || !d.Pool.Monitor().IsAvailable(srv.ID) {
			continue
		}
		sess, ok := accounts.SessionForServer(res.Sessions, srv.ID)
		if !ok {
			slog.Debug("no session for merged source", "server", srv.Name, "library", src.LibraryID)
			continue
		}

		wg.Add(1)
		go func(i int, src *ent.MergedLibrarySource, srv *ent.Server, sess *ent.AuthSession) {
			defer wg.Done()
			branchCtx, cancel := context.WithTimeout(ctx, d.Cfg.UpstreamTimeout)
			defer cancel()

			query := url.Values{}
			query.Set("ParentId", src.LibraryID)
			query.Set("Recursive", "true")
			query.Set("IncludeItemTypes", includeTypes)
			query.Set("Fields", "ProviderIds,Overview,Genres,People,MediaSources,Path,ProductionYear")

			body, status, err := d.Pool.For(srv, sess.AccessToken).
				ProxyJSON(branchCtx, http.MethodGet, "/Items", query, nil)
			if err != nil || status < 200 || status >= 300 {
				slog.Debug("merged source query failed",
					"server", srv.Name, "library", src.LibraryID, "status", status, "error", err)
				return
			}

			var tree any
			if err := json.Unmarshal(body, &tree); err != nil {
				return
			}
			tree, err = d.virtualizeTree(branchCtx, tree, srv, sess.RemoteUserID, vuid)
			if err != nil {
				slog.Debug("merged source virtualization failed", "server", srv.Name, "error", err)
				return
			}

			var raw []any
			switch t := tree.(type) {
			case map[string]any:
				raw, _ = t["Items"].([]any)
			case []any:
				raw = t
			}
			items := make([]map[string]any, 0, len(raw))
			for _, it := range raw {
				if m, ok := it.(map[string]any); ok {
					items = append(items, m)
				}
			}
			collected[i] = items
		}(i, src, srv, sess)
	}
	wg.Wait()

	dedupSources := make([]dedup.Source, 0, len(sources))
	for i, src := range sources {
		if collected[i] == nil {
			continue
		}
		dedupSources = append(dedupSources, dedup.Source{Priority: src.Priority, Items: collected[i]})
	}

	strategy := dedup.ParseStrategy(string(lib.DedupStrategy))
	items := dedup.Primaries(dedup.Merge(strategy, dedupSources))

	slog.Info("merged library assembled",
		"library", lib.Name, "sources", len(dedupSources), "items", len(items))

	c.JSON(http.StatusOK, gin.H{
		"Items":            items,
		"TotalRecordCount": len(items),
		"StartIndex":       0,
	})
}

// queryFold is case-insensitive url.Values.Get.
func queryFold(q url.Values, key string) string {
	for k, vs := range q {
		if strings.EqualFold(k, key) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}
