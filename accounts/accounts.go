// Package accounts manages the proxy's virtual users, their mappings to
// accounts on upstream servers, and the upstream sessions obtained through
// those mappings.
//
// A virtual user is keyed by (username, key hash): logging in with the same
// username and password always resolves to the same user, and the same
// username with a different password creates a distinct one. Upstream
// passwords are stored sealed under a key derived from the user's own proxy
// password; the proxy can only recover them while handling a request that
// carries that password.
package accounts

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jellyswarrm/jellyswarrm/ent"
	entauthsession "github.com/jellyswarrm/jellyswarrm/ent/authsession"
	entserver "github.com/jellyswarrm/jellyswarrm/ent/server"
	entservermapping "github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	entuser "github.com/jellyswarrm/jellyswarrm/ent/user"
	"github.com/jellyswarrm/jellyswarrm/seal"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

var (
	// ErrNotFound is returned when a user, mapping or session does not exist.
	ErrNotFound = errors.New("accounts: not found")
	// ErrWrongPassword is returned when a password check fails.
	ErrWrongPassword = errors.New("accounts: wrong password")
)

// DeviceInfo is the client identity captured from an authorization header.
// Sessions remember the device they were created from so later requests from
// the same device reuse them.
type DeviceInfo struct {
	DeviceID   string
	DeviceName string
	Client     string
	Version    string
}

// Service implements all user, mapping and session operations.
type Service struct {
	db    *ent.Client
	guard *writeguard.Guard
	// masterKey, when non-empty, additionally seals every stored upstream
	// password under a recovery key.
	masterKey string
}

func New(db *ent.Client, guard *writeguard.Guard, masterKey string) *Service {
	return &Service{db: db, guard: guard, masterKey: masterKey}
}

// NewVirtualKey mints a fresh virtual access token: a random UUID in simple
// form, indistinguishable from a Jellyfin token.
func NewVirtualKey() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// GetOrCreateUser resolves the virtual user for a username/password pair,
// creating it on first sight. Legacy hex-SHA-256 storage hashes are upgraded
// to bcrypt in passing.
func (s *Service) GetOrCreateUser(ctx context.Context, username, password string) (*ent.User, error) {
	keyHash := seal.KeyHash(password)

	u, err := s.db.User.Query().
		Where(entuser.Username(username), entuser.KeyHash(keyHash)).
		Only(ctx)
	if err == nil {
		if seal.NeedsRehash(u.PasswordHash) {
			u, err = s.rehash(ctx, u, password)
			if err != nil {
				return nil, err
			}
		}
		return u, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("accounts: querying user: %w", err)
	}

	storageHash, err := seal.HashPassword(password)
	if err != nil {
		return nil, err
	}
	err = s.guard.Do(ctx, func() error {
		u, err = s.db.User.Create().
			SetUsername(username).
			SetPasswordHash(storageHash).
			SetKeyHash(keyHash).
			SetVirtualKey(NewVirtualKey()).
			Save(ctx)
		return err
	})
	if ent.IsConstraintError(err) {
		// Lost a creation race; the winner's row is the user.
		u, err = s.db.User.Query().
			Where(entuser.Username(username), entuser.KeyHash(keyHash)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("accounts: re-querying user: %w", err)
		}
		return u, nil
	}
	if err != nil {
		return nil, fmt.Errorf("accounts: creating user: %w", err)
	}
	return u, nil
}

func (s *Service) rehash(ctx context.Context, u *ent.User, password string) (*ent.User, error) {
	storageHash, err := seal.HashPassword(password)
	if err != nil {
		return nil, err
	}
	err = s.guard.Do(ctx, func() error {
		u, err = u.Update().SetPasswordHash(storageHash).Save(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("accounts: upgrading password hash: %w", err)
	}
	return u, nil
}

// GetByVirtualKey resolves the user owning a virtual access token.
func (s *Service) GetByVirtualKey(ctx context.Context, key string) (*ent.User, error) {
	u, err := s.db.User.Query().Where(entuser.VirtualKey(key)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("accounts: querying user by key: %w", err)
	}
	return u, nil
}

// GetUserByID loads one user.
func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("accounts: loading user: %w", err)
	}
	return u, nil
}

// ListUsers returns every virtual user, newest first.
func (s *Service) ListUsers(ctx context.Context) ([]*ent.User, error) {
	users, err := s.db.User.Query().
		Order(ent.Desc(entuser.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("accounts: listing users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user; mappings and sessions go with it via cascades.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := s.guard.Do(ctx, func() error {
		return s.db.User.DeleteOneID(id).Exec(ctx)
	})
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("accounts: deleting user: %w", err)
	}
	return nil
}

// AddMapping stores (or refreshes) the user's credentials for one upstream
// server. The upstream password is sealed under the user's proxy password,
// plus the master key when one is configured.
func (s *Service) AddMapping(ctx context.Context, user *ent.User, password string, server *ent.Server, remoteUsername, remotePassword string) (*ent.ServerMapping, error) {
	sealed, err := seal.Encrypt(remotePassword, seal.DeriveKey(password))
	if err != nil {
		return nil, err
	}
	var recovery *string
	if s.masterKey != "" {
		r, err := seal.Encrypt(remotePassword, seal.DeriveKey(s.masterKey))
		if err != nil {
			return nil, err
		}
		recovery = &r
	}

	existing, err := s.db.ServerMapping.Query().
		Where(
			entservermapping.HasUserWith(entuser.ID(user.ID)),
			entservermapping.HasServerWith(entserver.ID(server.ID)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("accounts: querying mapping: %w", err)
	}

	var m *ent.ServerMapping
	err = s.guard.Do(ctx, func() error {
		var err error
		if existing != nil {
			upd := existing.Update().
				SetRemoteUsername(remoteUsername).
				SetEncryptedPassword(sealed)
			if recovery != nil {
				upd.SetRecoveryPassword(*recovery)
			}
			m, err = upd.Save(ctx)
			return err
		}
		create := s.db.ServerMapping.Create().
			SetUser(user).
			SetServer(server).
			SetRemoteUsername(remoteUsername).
			SetEncryptedPassword(sealed)
		if recovery != nil {
			create.SetRecoveryPassword(*recovery)
		}
		m, err = create.Save(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("accounts: storing mapping: %w", err)
	}
	return m, nil
}

// DecryptMapping recovers a mapping's upstream password using the user's
// proxy password, falling back to the master recovery key when the primary
// seal does not open.
func (s *Service) DecryptMapping(m *ent.ServerMapping, password string) (string, error) {
	plain, err := seal.Decrypt(m.EncryptedPassword, seal.DeriveKey(password))
	if err == nil {
		return plain, nil
	}
	if s.masterKey != "" && m.RecoveryPassword != nil {
		if plain, rerr := seal.Decrypt(*m.RecoveryPassword, seal.DeriveKey(s.masterKey)); rerr == nil {
			return plain, nil
		}
	}
	return "", err
}

// ListMappings returns the user's mappings with server edges loaded, ordered
// by server priority (highest first).
func (s *Service) ListMappings(ctx context.Context, user *ent.User) ([]*ent.ServerMapping, error) {
	mappings, err := s.db.ServerMapping.Query().
		Where(entservermapping.HasUserWith(entuser.ID(user.ID))).
		WithServer().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("accounts: listing mappings: %w", err)
	}
	sortMappings(mappings)
	return mappings, nil
}

// DeleteMapping removes one mapping. Sessions authenticated through it are
// cascade-deleted.
func (s *Service) DeleteMapping(ctx context.Context, id uuid.UUID) error {
	err := s.guard.Do(ctx, func() error {
		return s.db.ServerMapping.DeleteOneID(id).Exec(ctx)
	})
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("accounts: deleting mapping: %w", err)
	}
	return nil
}

// StoreSession records an upstream-issued access token for one device,
// replacing any previous session of the same device on the same mapping.
func (s *Service) StoreSession(ctx context.Context, user *ent.User, mapping *ent.ServerMapping, token, remoteUserID string, device DeviceInfo, ttl time.Duration) (*ent.AuthSession, error) {
	var sess *ent.AuthSession
	err := s.guard.Do(ctx, func() error {
		tx, err := s.db.Tx(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		_, err = tx.AuthSession.Delete().
			Where(
				entauthsession.HasUserWith(entuser.ID(user.ID)),
				entauthsession.HasMappingWith(entservermapping.ID(mapping.ID)),
				entauthsession.DeviceID(device.DeviceID),
			).
			Exec(ctx)
		if err != nil {
			return err
		}

		create := tx.AuthSession.Create().
			SetUser(user).
			SetMappingID(mapping.ID).
			SetAccessToken(token).
			SetRemoteUserID(remoteUserID).
			SetDeviceID(device.DeviceID).
			SetDeviceName(device.DeviceName).
			SetClient(device.Client).
			SetClientVersion(device.Version)
		if ttl > 0 {
			create.SetExpiresAt(time.Now().Add(ttl))
		}
		sess, err = create.Save(ctx)
		if err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return nil, fmt.Errorf("accounts: storing session: %w", err)
	}
	return sess, nil
}

// GetSessions returns the user's live sessions, one per reachable mapping,
// with mapping and server edges loaded and ordered by server priority.
//
// When device info is given the match cascades from most to least specific:
// same device ID and client; same device name and client; same client and
// version; finally any session. The first tier with matches wins, so a
// device reuses its own sessions when it has them and borrows the user's
// other sessions otherwise.
func (s *Service) GetSessions(ctx context.Context, user *ent.User, device *DeviceInfo) ([]*ent.AuthSession, error) {
	all, err := s.db.AuthSession.Query().
		Where(entauthsession.HasUserWith(entuser.ID(user.ID))).
		WithMapping(func(q *ent.ServerMappingQuery) {
			q.WithServer()
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("accounts: listing sessions: %w", err)
	}

	now := time.Now()
	live := all[:0]
	for _, sess := range all {
		if sess.ExpiresAt != nil && sess.ExpiresAt.Before(now) {
			continue
		}
		live = append(live, sess)
	}

	sessions := matchDevice(live, device)
	sortSessions(sessions)
	return sessions, nil
}

func matchDevice(sessions []*ent.AuthSession, device *DeviceInfo) []*ent.AuthSession {
	if device == nil {
		return sessions
	}
	tiers := []func(*ent.AuthSession) bool{
		func(s *ent.AuthSession) bool {
			return device.DeviceID != "" && s.DeviceID == device.DeviceID && s.Client == device.Client
		},
		func(s *ent.AuthSession) bool {
			return device.DeviceName != "" && s.DeviceName == device.DeviceName && s.Client == device.Client
		},
		func(s *ent.AuthSession) bool {
			return device.Client != "" && s.Client == device.Client && s.ClientVersion == device.Version
		},
	}
	for _, match := range tiers {
		var out []*ent.AuthSession
		for _, s := range sessions {
			if match(s) {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return sessions
}

// SessionForServer picks the session owned by a specific server out of a
// GetSessions result.
func SessionForServer(sessions []*ent.AuthSession, serverID uuid.UUID) (*ent.AuthSession, bool) {
	for _, sess := range sessions {
		if m := sess.Edges.Mapping; m != nil && m.Edges.Server != nil && m.Edges.Server.ID == serverID {
			return sess, true
		}
	}
	return nil, false
}

// TouchSession refreshes a session's last-seen timestamp. Best effort; the
// request proceeds regardless.
func (s *Service) TouchSession(ctx context.Context, sess *ent.AuthSession) {
	_ = s.guard.Do(ctx, func() error {
		return sess.Update().SetLastSeen(time.Now()).Exec(ctx)
	})
}

// DeleteAllSessions drops every session of one user, forcing re-login
// everywhere. Returns the number deleted.
func (s *Service) DeleteAllSessions(ctx context.Context, user *ent.User) (int, error) {
	var n int
	err := s.guard.Do(ctx, func() error {
		var err error
		n, err = s.db.AuthSession.Delete().
			Where(entauthsession.HasUserWith(entuser.ID(user.ID))).
			Exec(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("accounts: deleting sessions: %w", err)
	}
	return n, nil
}

// DeleteExpiredSessions drops sessions past their expiry. The background
// sweeper calls this periodically.
func (s *Service) DeleteExpiredSessions(ctx context.Context) (int, error) {
	var n int
	err := s.guard.Do(ctx, func() error {
		var err error
		n, err = s.db.AuthSession.Delete().
			Where(
				entauthsession.ExpiresAtNotNil(),
				entauthsession.ExpiresAtLT(time.Now()),
			).
			Exec(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("accounts: deleting expired sessions: %w", err)
	}
	return n, nil
}

// UpdatePassword verifies the old password, stores the new one and re-seals
// every mapping under the new derived key. The user's identity hash rotates
// with the password.
func (s *Service) UpdatePassword(ctx context.Context, user *ent.User, oldPassword, newPassword string) error {
	if !seal.Verify(oldPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	mappings, err := s.ListMappings(ctx, user)
	if err != nil {
		return err
	}

	type resealed struct {
		id     uuid.UUID
		sealed string
	}
	reseals := make([]resealed, 0, len(mappings))
	newKey := seal.DeriveKey(newPassword)
	for _, m := range mappings {
		plain, err := s.DecryptMapping(m, oldPassword)
		if err != nil {
			return fmt.Errorf("accounts: unsealing mapping for %s: %w", m.RemoteUsername, err)
		}
		sealed, err := seal.Encrypt(plain, newKey)
		if err != nil {
			return err
		}
		reseals = append(reseals, resealed{id: m.ID, sealed: sealed})
	}

	storageHash, err := seal.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.guard.Do(ctx, func() error {
		tx, err := s.db.Tx(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if err := tx.User.UpdateOneID(user.ID).
			SetPasswordHash(storageHash).
			SetKeyHash(seal.KeyHash(newPassword)).
			Exec(ctx); err != nil {
			return err
		}
		for _, r := range reseals {
			if err := tx.ServerMapping.UpdateOneID(r.id).
				SetEncryptedPassword(r.sealed).
				Exec(ctx); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("accounts: updating password: %w", err)
	}
	return nil
}

// SessionCountsByServer reports how many live sessions exist per server, for
// the admin API.
func (s *Service) SessionCountsByServer(ctx context.Context) (map[uuid.UUID]int, error) {
	sessions, err := s.db.AuthSession.Query().
		WithMapping(func(q *ent.ServerMappingQuery) {
			q.WithServer()
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("accounts: counting sessions: %w", err)
	}
	counts := make(map[uuid.UUID]int)
	for _, sess := range sessions {
		if m := sess.Edges.Mapping; m != nil && m.Edges.Server != nil {
			counts[m.Edges.Server.ID]++
		}
	}
	return counts, nil
}

func sortMappings(mappings []*ent.ServerMapping) {
	sort.SliceStable(mappings, func(i, j int) bool {
		a, b := mappings[i].Edges.Server, mappings[j].Edges.Server
		if a == nil || b == nil {
			return a != nil
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Name < b.Name
	})
}

func sortSessions(sessions []*ent.AuthSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := serverOf(sessions[i]), serverOf(sessions[j])
		if a == nil || b == nil {
			return a != nil
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Name < b.Name
	})
}

func serverOf(sess *ent.AuthSession) *ent.Server {
	if m := sess.Edges.Mapping; m != nil {
		return m.Edges.Server
	}
	return nil
}
