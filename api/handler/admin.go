package handler

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/api/middleware"
	"github.com/jellyswarrm/jellyswarrm/ent"
	entapikey "github.com/jellyswarrm/jellyswarrm/ent/apikey"
	entauditlog "github.com/jellyswarrm/jellyswarrm/ent/auditlog"
	entmergedlibrary "github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	entmergedlibrarysource "github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/seal"
	"github.com/jellyswarrm/jellyswarrm/upstream"
)

const adminTokenTTL = 24 * time.Hour

// audit records an administrative mutation. Best effort; a lost row never
// fails the request.
func (d *Deps) audit(c *gin.Context, action entauditlog.Action, resourceType, resourceID, detail string) {
	err := d.Guard.Do(c.Request.Context(), func() error {
		return d.DB.AuditLog.Create().
			SetActor(middleware.Actor(c)).
			SetActorType(entauditlog.ActorTypeAdmin).
			SetAction(action).
			SetResourceType(resourceType).
			SetResourceID(resourceID).
			SetDetail(detail).
			Exec(c.Request.Context())
	})
	if err != nil {
		slog.Warn("audit write failed", "action", action, "resource", resourceType, "error", err)
	}
}

// AdminLogin handles POST /proxy/login: exchanges the configured admin
// credentials for a bearer token for the rest of the admin API.
func (d *Deps) AdminLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(d.Cfg.AdminUsername))&
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(d.Cfg.AdminPassword)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	token := seal.SignToken(req.Username, adminTokenTTL, d.Cfg.SessionKey)
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": time.Now().Add(adminTokenTTL).UTC().Format(time.RFC3339),
	})
}

// --- servers ---

func serverJSON(s *ent.Server) gin.H {
	return gin.H{
		"id":         s.ID,
		"name":       s.Name,
		"url":        s.URL,
		"priority":   s.Priority,
		"created_at": s.CreatedAt,
	}
}

// AdminListServers handles GET /proxy/servers.
func (d *Deps) AdminListServers(c *gin.Context) {
	servers, err := d.Registry.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	out := make([]gin.H, 0, len(servers))
	for _, s := range servers {
		j := serverJSON(s)
		j["available"] = d.Pool.Monitor().IsAvailable(s.ID)
		out = append(out, j)
	}
	c.JSON(http.StatusOK, out)
}

// AdminAddServer handles POST /proxy/servers.
func (d *Deps) AdminAddServer(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		URL      string `json:"url" binding:"required"`
		Priority int    `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	srv, err := d.Registry.Add(c.Request.Context(), req.Name, req.URL, req.Priority)
	switch {
	case err == upstream.ErrDuplicate:
		c.JSON(http.StatusConflict, gin.H{"error": "Server already registered"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.audit(c, entauditlog.ActionCreate, "server", srv.ID.String(), srv.Name+" "+srv.URL)
	c.JSON(http.StatusCreated, serverJSON(srv))
}

// AdminUpdateServer handles PATCH /proxy/servers/:id.
func (d *Deps) AdminUpdateServer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad server id"})
		return
	}
	var req struct {
		Name     *string `json:"name"`
		URL      *string `json:"url"`
		Priority *int    `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	srv, err := d.Registry.Update(c.Request.Context(), id, req.Name, req.URL, req.Priority)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Server not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.audit(c, entauditlog.ActionUpdate, "server", srv.ID.String(), "")
	c.JSON(http.StatusOK, serverJSON(srv))
}

// AdminDeleteServer handles DELETE /proxy/servers/:id. Mappings, sessions and
// ID mappings on the server cascade away with it.
func (d *Deps) AdminDeleteServer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad server id"})
		return
	}
	if err := d.Registry.Delete(c.Request.Context(), id); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Server not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	d.IDs.PurgeServer(c.Request.Context(), id)
	d.Pool.Monitor().Forget(id)
	d.audit(c, entauditlog.ActionDelete, "server", id.String(), "")
	c.Status(http.StatusNoContent)
}

// AdminServerHealth handles GET /proxy/servers/health: the monitor's current
// snapshot.
func (d *Deps) AdminServerHealth(c *gin.Context) {
	statuses := d.Pool.Monitor().Statuses()
	out := make([]gin.H, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, gin.H{
			"server_id":     s.ServerID,
			"available":     s.Available,
			"last_checked":  s.LastChecked,
			"last_error":    s.LastError,
			"version":       s.Version,
			"failure_count": s.FailureCount,
		})
	}
	c.JSON(http.StatusOK, out)
}

// AdminCheckServers handles POST /proxy/servers/check: an immediate health
// sweep, ahead of the next scheduled one.
func (d *Deps) AdminCheckServers(c *gin.Context) {
	d.Pool.Monitor().CheckNow(c.Request.Context())
	d.AdminServerHealth(c)
}

// --- users ---

func userJSON(u *ent.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"created_at": u.CreatedAt,
	}
}

// AdminListUsers handles GET /proxy/users.
func (d *Deps) AdminListUsers(c *gin.Context) {
	users, err := d.Accounts.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	c.JSON(http.StatusOK, out)
}

// AdminGetUser handles GET /proxy/users/:id, including the user's server
// mappings.
func (d *Deps) AdminGetUser(c *gin.Context) {
	user, ok := d.adminUser(c)
	if !ok {
		return
	}
	mappings, err := d.Accounts.ListMappings(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	ms := make([]gin.H, 0, len(mappings))
	for _, m := range mappings {
		j := gin.H{
			"id":              m.ID,
			"remote_username": m.RemoteUsername,
			"created_at":      m.CreatedAt,
		}
		if m.Edges.Server != nil {
			j["server_id"] = m.Edges.Server.ID
			j["server_name"] = m.Edges.Server.Name
		}
		ms = append(ms, j)
	}
	j := userJSON(user)
	j["mappings"] = ms
	c.JSON(http.StatusOK, j)
}

// AdminDeleteUser handles DELETE /proxy/users/:id.
func (d *Deps) AdminDeleteUser(c *gin.Context) {
	user, ok := d.adminUser(c)
	if !ok {
		return
	}
	if err := d.Accounts.DeleteUser(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	d.audit(c, entauditlog.ActionDelete, "user", user.ID.String(), user.Username)
	c.Status(http.StatusNoContent)
}

// AdminResetUserSessions handles POST /proxy/users/:id/sessions/reset: drops
// every stored upstream session, forcing fresh fan-out logins.
func (d *Deps) AdminResetUserSessions(c *gin.Context) {
	user, ok := d.adminUser(c)
	if !ok {
		return
	}
	n, err := d.Accounts.DeleteAllSessions(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	d.audit(c, entauditlog.ActionSessionReset, "user", user.ID.String(), strconv.Itoa(n)+" sessions")
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// AdminDeleteMapping handles DELETE /proxy/mappings/:id.
func (d *Deps) AdminDeleteMapping(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad mapping id"})
		return
	}
	if err := d.Accounts.DeleteMapping(c.Request.Context(), id); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mapping not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	d.audit(c, entauditlog.ActionDelete, "mapping", id.String(), "")
	c.Status(http.StatusNoContent)
}

func (d *Deps) adminUser(c *gin.Context) (*ent.User, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad user id"})
		return nil, false
	}
	user, err := d.Accounts.GetUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}
	return user, true
}

// --- merged libraries ---

func mergedLibraryJSON(lib *ent.MergedLibrary) gin.H {
	j := gin.H{
		"id":              lib.ID,
		"virtual_id":      lib.VirtualID,
		"name":            lib.Name,
		"collection_type": lib.CollectionType,
		"dedup_strategy":  lib.DedupStrategy,
		"is_global":       lib.IsGlobal,
		"created_at":      lib.CreatedAt,
	}
	if lib.Edges.Sources != nil {
		srcs := make([]gin.H, 0, len(lib.Edges.Sources))
		for _, s := range lib.Edges.Sources {
			sj := gin.H{
				"id":           s.ID,
				"library_id":   s.LibraryID,
				"library_name": s.LibraryName,
				"priority":     s.Priority,
			}
			if s.Edges.Server != nil {
				sj["server_id"] = s.Edges.Server.ID
				sj["server_name"] = s.Edges.Server.Name
			}
			srcs = append(srcs, sj)
		}
		j["sources"] = srcs
	}
	return j
}

// AdminListLibraries handles GET /proxy/libraries.
func (d *Deps) AdminListLibraries(c *gin.Context) {
	libs, err := d.DB.MergedLibrary.Query().
		WithSources(func(q *ent.MergedLibrarySourceQuery) { q.WithServer() }).
		Order(ent.Asc(entmergedlibrary.FieldName)).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	out := make([]gin.H, 0, len(libs))
	for _, lib := range libs {
		out = append(out, mergedLibraryJSON(lib))
	}
	c.JSON(http.StatusOK, out)
}

// AdminCreateLibrary handles POST /proxy/libraries.
func (d *Deps) AdminCreateLibrary(c *gin.Context) {
	var req struct {
		Name           string `json:"name" binding:"required"`
		CollectionType string `json:"collection_type"`
		DedupStrategy  string `json:"dedup_strategy"`
		IsGlobal       *bool  `json:"is_global"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	create := d.DB.MergedLibrary.Create().
		SetName(req.Name).
		SetVirtualID("merged-" + uuid.NewString()).
		SetCreatedBy(middleware.Actor(c))
	if req.CollectionType != "" {
		create.SetCollectionType(entmergedlibrary.CollectionType(req.CollectionType))
	}
	if req.DedupStrategy != "" {
		create.SetDedupStrategy(entmergedlibrary.DedupStrategy(req.DedupStrategy))
	}
	if req.IsGlobal != nil {
		create.SetIsGlobal(*req.IsGlobal)
	}

	var lib *ent.MergedLibrary
	err := d.Guard.Do(c.Request.Context(), func() error {
		var err error
		lib, err = create.Save(c.Request.Context())
		return err
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.audit(c, entauditlog.ActionCreate, "merged_library", lib.ID.String(), lib.Name)
	c.JSON(http.StatusCreated, mergedLibraryJSON(lib))
}

// AdminUpdateLibrary handles PATCH /proxy/libraries/:id.
func (d *Deps) AdminUpdateLibrary(c *gin.Context) {
	lib, ok := d.adminLibrary(c)
	if !ok {
		return
	}
	var req struct {
		Name           *string `json:"name"`
		CollectionType *string `json:"collection_type"`
		DedupStrategy  *string `json:"dedup_strategy"`
		IsGlobal       *bool   `json:"is_global"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := lib.Update()
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.CollectionType != nil {
		update.SetCollectionType(entmergedlibrary.CollectionType(*req.CollectionType))
	}
	if req.DedupStrategy != nil {
		update.SetDedupStrategy(entmergedlibrary.DedupStrategy(*req.DedupStrategy))
	}
	if req.IsGlobal != nil {
		update.SetIsGlobal(*req.IsGlobal)
	}

	err := d.Guard.Do(c.Request.Context(), func() error {
		var err error
		lib, err = update.Save(c.Request.Context())
		return err
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.audit(c, entauditlog.ActionUpdate, "merged_library", lib.ID.String(), "")
	c.JSON(http.StatusOK, mergedLibraryJSON(lib))
}

// AdminDeleteLibrary handles DELETE /proxy/libraries/:id.
func (d *Deps) AdminDeleteLibrary(c *gin.Context) {
	lib, ok := d.adminLibrary(c)
	if !ok {
		return
	}
	err := d.Guard.Do(c.Request.Context(), func() error {
		return d.DB.MergedLibrary.DeleteOne(lib).Exec(c.Request.Context())
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	d.audit(c, entauditlog.ActionDelete, "merged_library", lib.ID.String(), lib.Name)
	c.Status(http.StatusNoContent)
}

// AdminAddLibrarySource handles POST /proxy/libraries/:id/sources.
func (d *Deps) AdminAddLibrarySource(c *gin.Context) {
	lib, ok := d.adminLibrary(c)
	if !ok {
		return
	}
	var req struct {
		ServerID    string `json:"server_id" binding:"required"`
		LibraryID   string `json:"library_id" binding:"required"`
		LibraryName string `json:"library_name"`
		Priority    *int   `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	serverID, err := uuid.Parse(req.ServerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad server id"})
		return
	}
	srv, err := d.Registry.ByID(c.Request.Context(), serverID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Server not found"})
		return
	}

	create := d.DB.MergedLibrarySource.Create().
		SetMergedLibrary(lib).
		SetServer(srv).
		SetLibraryID(req.LibraryID).
		SetLibraryName(req.LibraryName)
	if req.Priority != nil {
		create.SetPriority(*req.Priority)
	}

	var src *ent.MergedLibrarySource
	err = d.Guard.Do(c.Request.Context(), func() error {
		var err error
		src, err = create.Save(c.Request.Context())
		return err
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Source already attached"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.audit(c, entauditlog.ActionUpdate, "merged_library", lib.ID.String(),
		"source added: "+srv.Name+"/"+req.LibraryID)
	c.JSON(http.StatusCreated, gin.H{
		"id":         src.ID,
		"library_id": src.LibraryID,
		"priority":   src.Priority,
	})
}

// AdminDeleteLibrarySource handles DELETE /proxy/libraries/:id/sources/:sourceId.
func (d *Deps) AdminDeleteLibrarySource(c *gin.Context) {
	lib, ok := d.adminLibrary(c)
	if !ok {
		return
	}
	sourceID, err := uuid.Parse(c.Param("sourceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad source id"})
		return
	}
	err = d.Guard.Do(c.Request.Context(), func() error {
		n, err := d.DB.MergedLibrarySource.Delete().
			Where(
				entmergedlibrarysource.ID(sourceID),
				entmergedlibrarysource.HasMergedLibraryWith(entmergedlibrary.ID(lib.ID)),
			).
			Exec(c.Request.Context())
		if err == nil && n == 0 {
			err = &ent.NotFoundError{}
		}
		return err
	})
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	d.audit(c, entauditlog.ActionUpdate, "merged_library", lib.ID.String(),
		"source removed: "+sourceID.String())
	c.Status(http.StatusNoContent)
}

func (d *Deps) adminLibrary(c *gin.Context) (*ent.MergedLibrary, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad library id"})
		return nil, false
	}
	lib, err := d.DB.MergedLibrary.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Library not found"})
		return nil, false
	}
	return lib, true
}

// --- audit log ---

// AdminAuditLog handles GET /proxy/audit?limit=: the most recent entries,
// newest first.
func (d *Deps) AdminAuditLog(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad limit"})
			return
		}
		limit = n
	}
	rows, err := d.DB.AuditLog.Query().
		Order(ent.Desc(entauditlog.FieldCreatedAt)).
		Limit(limit).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, gin.H{
			"id":            r.ID,
			"actor":         r.Actor,
			"actor_type":    r.ActorType,
			"action":        r.Action,
			"resource_type": r.ResourceType,
			"resource_id":   r.ResourceID,
			"detail":        r.Detail,
			"created_at":    r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// --- api keys ---

// AdminListAPIKeys handles GET /proxy/apikeys. Hashes stay server-side; only
// the prefix identifies a key.
func (d *Deps) AdminListAPIKeys(c *gin.Context) {
	keys, err := d.DB.APIKey.Query().
		Order(ent.Asc(entapikey.FieldName)).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	out := make([]gin.H, 0, len(keys))
	for _, k := range keys {
		out = append(out, gin.H{
			"id":           k.ID,
			"name":         k.Name,
			"key_prefix":   k.KeyPrefix,
			"created_by":   k.CreatedBy,
			"last_used_at": k.LastUsedAt,
			"expires_at":   k.ExpiresAt,
			"created_at":   k.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// AdminCreateAPIKey handles POST /proxy/apikeys. The plaintext key appears in
// this response and nowhere else.
func (d *Deps) AdminCreateAPIKey(c *gin.Context) {
	var req struct {
		Name      string     `json:"name" binding:"required"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	plaintext := hex.EncodeToString(raw)
	sum := sha256.Sum256([]byte(plaintext))

	create := d.DB.APIKey.Create().
		SetName(req.Name).
		SetKeyHash(hex.EncodeToString(sum[:])).
		SetKeyPrefix(plaintext[:8]).
		SetCreatedBy(middleware.Actor(c))
	if req.ExpiresAt != nil {
		create.SetExpiresAt(*req.ExpiresAt)
	}

	var key *ent.APIKey
	err := d.Guard.Do(c.Request.Context(), func() error {
		var err error
		key, err = create.Save(c.Request.Context())
		return err
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.audit(c, entauditlog.ActionCreate, "apikey", key.ID.String(), key.Name)
	c.JSON(http.StatusCreated, gin.H{
		"id":         key.ID,
		"name":       key.Name,
		"key":        plaintext,
		"key_prefix": key.KeyPrefix,
		"expires_at": key.ExpiresAt,
	})
}

// AdminDeleteAPIKey handles DELETE /proxy/apikeys/:id.
func (d *Deps) AdminDeleteAPIKey(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad key id"})
		return
	}
	err = d.Guard.Do(c.Request.Context(), func() error {
		return d.DB.APIKey.DeleteOneID(id).Exec(c.Request.Context())
	})
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	d.audit(c, entauditlog.ActionDelete, "apikey", id.String(), "")
	c.Status(http.StatusNoContent)
}
