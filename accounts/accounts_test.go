package accounts_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/accounts"
	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/seal"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

var _ = Describe("Service", func() {
	var (
		ctx  context.Context
		svc  *accounts.Service
		srvA *ent.Server
		srvB *ent.Server
	)

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		svc = accounts.New(db, writeguard.New(), "")

		srvA = db.Server.Create().SetName("Main").SetURL("http://main:8096").SetPriority(200).SaveX(ctx)
		srvB = db.Server.Create().SetName("Backup").SetURL("http://backup:8096").SetPriority(100).SaveX(ctx)
	})

	device := func(id string) accounts.DeviceInfo {
		return accounts.DeviceInfo{DeviceID: id, DeviceName: "Living Room TV", Client: "Jellyfin Web", Version: "10.9.1"}
	}

	Describe("GetOrCreateUser", func() {
		It("resolves the same user for the same username and password", func() {
			u1, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			u2, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())

			Expect(u2.ID).To(Equal(u1.ID))
			Expect(u2.VirtualKey).To(Equal(u1.VirtualKey))
			Expect(db.User.Query().CountX(ctx)).To(Equal(1))
		})

		It("creates a distinct user for the same username with a different password", func() {
			u1, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			u2, err := svc.GetOrCreateUser(ctx, "alice", "other")
			Expect(err).NotTo(HaveOccurred())

			Expect(u2.ID).NotTo(Equal(u1.ID))
			Expect(u2.VirtualKey).NotTo(Equal(u1.VirtualKey))
		})

		It("issues a 32-hex virtual key that is not the password", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.VirtualKey).To(MatchRegexp("^[0-9a-f]{32}$"))
		})

		It("upgrades a legacy hex-SHA-256 storage hash to bcrypt", func() {
			legacy := db.User.Create().
				SetUsername("bob").
				SetPasswordHash(seal.KeyHash("secret")).
				SetKeyHash(seal.KeyHash("secret")).
				SetVirtualKey(accounts.NewVirtualKey()).
				SaveX(ctx)

			u, err := svc.GetOrCreateUser(ctx, "bob", "secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal(legacy.ID))

			stored := db.User.GetX(ctx, legacy.ID)
			Expect(seal.NeedsRehash(stored.PasswordHash)).To(BeFalse())
			Expect(seal.Verify("secret", stored.PasswordHash)).To(BeTrue())
		})
	})

	Describe("GetByVirtualKey", func() {
		It("resolves a user from their virtual key", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())

			got, err := svc.GetByVirtualKey(ctx, u.VirtualKey)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(u.ID))
		})

		It("returns ErrNotFound for an unknown key", func() {
			_, err := svc.GetByVirtualKey(ctx, "deadbeefdeadbeefdeadbeefdeadbeef")
			Expect(errors.Is(err, accounts.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("AddMapping and DecryptMapping", func() {
		It("seals the upstream password under the user's password", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())

			m, err := svc.AddMapping(ctx, u, "secret", srvA, "alice-upstream", "upstream-pw")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.EncryptedPassword).NotTo(ContainSubstring("upstream-pw"))

			plain, err := svc.DecryptMapping(m, "secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(plain).To(Equal("upstream-pw"))

			_, err = svc.DecryptMapping(m, "wrong")
			Expect(err).To(HaveOccurred())
		})

		It("replaces the stored credentials for the same (user, server)", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.AddMapping(ctx, u, "secret", srvA, "alice", "old-pw")
			Expect(err).NotTo(HaveOccurred())
			m, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "new-pw")
			Expect(err).NotTo(HaveOccurred())

			Expect(db.ServerMapping.Query().CountX(ctx)).To(Equal(1))
			plain, err := svc.DecryptMapping(m, "secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(plain).To(Equal("new-pw"))
		})

		It("opens the recovery seal with the master key", func() {
			master := accounts.New(db, writeguard.New(), "master-key")
			u, err := master.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())

			m, err := master.AddMapping(ctx, u, "secret", srvA, "alice", "upstream-pw")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.RecoveryPassword).NotTo(BeNil())

			// Wrong user password, but the master key still opens it.
			plain, err := master.DecryptMapping(m, "forgotten")
			Expect(err).NotTo(HaveOccurred())
			Expect(plain).To(Equal("upstream-pw"))
		})

		It("orders mappings by server priority", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.AddMapping(ctx, u, "secret", srvB, "alice", "pw-b")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw-a")
			Expect(err).NotTo(HaveOccurred())

			mappings, err := svc.ListMappings(ctx, u)
			Expect(err).NotTo(HaveOccurred())
			Expect(mappings).To(HaveLen(2))
			Expect(mappings[0].Edges.Server.Name).To(Equal("Main"))
			Expect(mappings[1].Edges.Server.Name).To(Equal("Backup"))
		})
	})

	Describe("StoreSession", func() {
		It("replaces the previous session of the same device", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			m, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.StoreSession(ctx, u, m, "token-1", "remote-1", device("dev-1"), 0)
			Expect(err).NotTo(HaveOccurred())
			sess, err := svc.StoreSession(ctx, u, m, "token-2", "remote-1", device("dev-1"), 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(db.AuthSession.Query().CountX(ctx)).To(Equal(1))
			Expect(sess.AccessToken).To(Equal("token-2"))
		})

		It("keeps sessions of different devices apart", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			m, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.StoreSession(ctx, u, m, "token-1", "remote-1", device("dev-1"), 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, m, "token-2", "remote-1", device("dev-2"), 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(db.AuthSession.Query().CountX(ctx)).To(Equal(2))
		})
	})

	Describe("GetSessions", func() {
		var u *ent.User

		BeforeEach(func() {
			var err error
			u, err = svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())

			mA, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())
			mB, err := svc.AddMapping(ctx, u, "secret", srvB, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.StoreSession(ctx, u, mA, "token-a", "ra", device("tv"), 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, mB, "token-b", "rb", device("tv"), 0)
			Expect(err).NotTo(HaveOccurred())
		})

		It("orders sessions by server priority", func() {
			sessions, err := svc.GetSessions(ctx, u, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(2))
			Expect(sessions[0].AccessToken).To(Equal("token-a"))
			Expect(sessions[1].AccessToken).To(Equal("token-b"))
		})

		It("prefers sessions of the exact device", func() {
			mA, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, mA, "token-phone", "ra", device("phone"), 0)
			Expect(err).NotTo(HaveOccurred())

			d := device("phone")
			sessions, err := svc.GetSessions(ctx, u, &d)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(1))
			Expect(sessions[0].AccessToken).To(Equal("token-phone"))
		})

		It("falls back to device name, then client, then anything", func() {
			unknown := accounts.DeviceInfo{DeviceID: "new-device", DeviceName: "Living Room TV", Client: "Jellyfin Web", Version: "10.9.1"}
			sessions, err := svc.GetSessions(ctx, u, &unknown)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(2), "device-name tier should match the tv sessions")

			stranger := accounts.DeviceInfo{DeviceID: "x", DeviceName: "y", Client: "Jellyfin Web", Version: "10.9.1"}
			sessions, err = svc.GetSessions(ctx, u, &stranger)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(2), "client tier should match")

			alien := accounts.DeviceInfo{DeviceID: "x", DeviceName: "y", Client: "z", Version: "0"}
			sessions, err = svc.GetSessions(ctx, u, &alien)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(2), "unconstrained tier returns everything")
		})

		It("drops expired sessions", func() {
			m, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())
			sess, err := svc.StoreSession(ctx, u, m, "token-old", "ra", device("old"), time.Minute)
			Expect(err).NotTo(HaveOccurred())
			db.AuthSession.UpdateOneID(sess.ID).SetExpiresAt(time.Now().Add(-time.Minute)).ExecX(ctx)

			d := device("old")
			sessions, err := svc.GetSessions(ctx, u, &d)
			Expect(err).NotTo(HaveOccurred())
			for _, s := range sessions {
				Expect(s.AccessToken).NotTo(Equal("token-old"))
			}
		})
	})

	Describe("SessionForServer", func() {
		It("picks the session owned by the given server", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			mA, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())
			mB, err := svc.AddMapping(ctx, u, "secret", srvB, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, mA, "token-a", "ra", device("tv"), 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, mB, "token-b", "rb", device("tv"), 0)
			Expect(err).NotTo(HaveOccurred())

			sessions, err := svc.GetSessions(ctx, u, nil)
			Expect(err).NotTo(HaveOccurred())

			sess, ok := accounts.SessionForServer(sessions, srvB.ID)
			Expect(ok).To(BeTrue())
			Expect(sess.AccessToken).To(Equal("token-b"))

			_, ok = accounts.SessionForServer(sessions, u.ID)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("DeleteMapping", func() {
		It("cascade-deletes the sessions of that mapping only", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			mA, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())
			mB, err := svc.AddMapping(ctx, u, "secret", srvB, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, mA, "token-a", "ra", device("tv"), 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, mB, "token-b", "rb", device("tv"), 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.DeleteMapping(ctx, mA.ID)).To(Succeed())

			sessions, err := svc.GetSessions(ctx, u, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(1))
			Expect(sessions[0].AccessToken).To(Equal("token-b"))
		})
	})

	Describe("DeleteExpiredSessions", func() {
		It("removes only sessions past their expiry", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			m, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.StoreSession(ctx, u, m, "token-live", "ra", device("a"), time.Hour)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, m, "token-forever", "ra", device("b"), 0)
			Expect(err).NotTo(HaveOccurred())
			dead, err := svc.StoreSession(ctx, u, m, "token-dead", "ra", device("c"), time.Minute)
			Expect(err).NotTo(HaveOccurred())
			db.AuthSession.UpdateOneID(dead.ID).SetExpiresAt(time.Now().Add(-time.Minute)).ExecX(ctx)

			n, err := svc.DeleteExpiredSessions(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
			Expect(db.AuthSession.Query().CountX(ctx)).To(Equal(2))
		})
	})

	Describe("UpdatePassword", func() {
		It("rejects a wrong old password", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())

			err = svc.UpdatePassword(ctx, u, "wrong", "new")
			Expect(errors.Is(err, accounts.ErrWrongPassword)).To(BeTrue())
		})

		It("re-seals every mapping under the new password", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw-a")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.AddMapping(ctx, u, "secret", srvB, "alice", "pw-b")
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.UpdatePassword(ctx, u, "secret", "brand-new")).To(Succeed())

			// The old password no longer resolves this user; the new one does.
			fresh, err := svc.GetOrCreateUser(ctx, "alice", "brand-new")
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.ID).To(Equal(u.ID))

			mappings, err := svc.ListMappings(ctx, fresh)
			Expect(err).NotTo(HaveOccurred())
			for _, m := range mappings {
				_, err := svc.DecryptMapping(m, "secret")
				Expect(err).To(HaveOccurred(), "old key must not open re-sealed mappings")
			}
			plain, err := svc.DecryptMapping(mappings[0], "brand-new")
			Expect(err).NotTo(HaveOccurred())
			Expect(plain).To(Equal("pw-a"))
		})
	})

	Describe("SessionCountsByServer", func() {
		It("counts sessions per owning server", func() {
			u, err := svc.GetOrCreateUser(ctx, "alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			mA, err := svc.AddMapping(ctx, u, "secret", srvA, "alice", "pw")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, mA, "t1", "ra", device("a"), 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.StoreSession(ctx, u, mA, "t2", "ra", device("b"), 0)
			Expect(err).NotTo(HaveOccurred())

			counts, err := svc.SessionCountsByServer(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts[srvA.ID]).To(Equal(2))
			Expect(counts[srvB.ID]).To(BeZero())
		})
	})
})
