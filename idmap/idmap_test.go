package idmap_test

import (
	"context"
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/idmap"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

var _ = Describe("Store", func() {
	var (
		ctx   context.Context
		store *idmap.Store
		srvA  *ent.Server
		srvB  *ent.Server
	)

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		store = idmap.New(db, writeguard.New())
		DeferCleanup(store.Stop)

		srvA = db.Server.Create().SetName("A").SetURL("http://a.local:8096").SetPriority(200).SaveX(ctx)
		srvB = db.Server.Create().SetName("B").SetURL("http://b.local:8096").SetPriority(100).SaveX(ctx)
	})

	Describe("Virtualize", func() {
		It("mints a 32-hex virtual ID distinct from the original", func() {
			vid, err := store.Virtualize(ctx, "abc123", srvA)
			Expect(err).NotTo(HaveOccurred())

			Expect(vid).To(HaveLen(32))
			Expect(vid).To(MatchRegexp("^[0-9a-f]{32}$"))
			Expect(vid).NotTo(Equal("abc123"))
		})

		It("is idempotent for the same item", func() {
			first, err := store.Virtualize(ctx, "abc123", srvA)
			Expect(err).NotTo(HaveOccurred())

			second, err := store.Virtualize(ctx, "abc123", srvA)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))

			Expect(db.MediaMapping.Query().CountX(ctx)).To(Equal(1))
		})

		It("assigns distinct virtual IDs to distinct (id, server) pairs", func() {
			seen := map[string]bool{}
			for _, tc := range []struct {
				id  string
				srv *ent.Server
			}{
				{"item-1", srvA},
				{"item-2", srvA},
				{"item-1", srvB},
				{"item-2", srvB},
			} {
				vid, err := store.Virtualize(ctx, tc.id, tc.srv)
				Expect(err).NotTo(HaveOccurred())
				Expect(seen[vid]).To(BeFalse(), "virtual ID %s assigned twice", vid)
				seen[vid] = true
			}
		})

		It("normalizes UUID spellings before mapping", func() {
			plain, err := store.Virtualize(ctx, "550e8400e29b41d4a716446655440000", srvA)
			Expect(err).NotTo(HaveOccurred())

			hyphenated, err := store.Virtualize(ctx, "550e8400-e29b-41d4-a716-446655440000", srvA)
			Expect(err).NotTo(HaveOccurred())
			Expect(hyphenated).To(Equal(plain))

			upper, err := store.Virtualize(ctx, "550E8400-E29B-41D4-A716-446655440000", srvA)
			Expect(err).NotTo(HaveOccurred())
			Expect(upper).To(Equal(plain))
		})

		It("rejects an empty original ID", func() {
			_, err := store.Virtualize(ctx, "", srvA)
			Expect(err).To(HaveOccurred())
		})

		It("agrees on one virtual ID under concurrency", func() {
			const workers = 8
			results := make([]string, workers)
			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					vid, err := store.Virtualize(ctx, "contended-item", srvA)
					Expect(err).NotTo(HaveOccurred())
					results[i] = vid
				}(i)
			}
			wg.Wait()

			for _, vid := range results[1:] {
				Expect(vid).To(Equal(results[0]))
			}
			Expect(db.MediaMapping.Query().CountX(ctx)).To(Equal(1))
		})
	})

	Describe("Resolve", func() {
		It("returns the original ID and owning server", func() {
			vid, err := store.Virtualize(ctx, "abc123", srvA)
			Expect(err).NotTo(HaveOccurred())

			r, err := store.Resolve(ctx, vid)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.OriginalID).To(Equal("abc123"))
			Expect(r.ServerID).To(Equal(srvA.ID))
		})

		It("accepts the hyphenated spelling of a virtual ID", func() {
			vid, err := store.Virtualize(ctx, "abc123", srvA)
			Expect(err).NotTo(HaveOccurred())

			dashed := vid[0:8] + "-" + vid[8:12] + "-" + vid[12:16] + "-" + vid[16:20] + "-" + vid[20:32]
			r, err := store.Resolve(ctx, dashed)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.OriginalID).To(Equal("abc123"))
		})

		It("returns ErrNotFound for an unknown virtual ID", func() {
			_, err := store.Resolve(ctx, "00000000000000000000000000000000")
			Expect(errors.Is(err, idmap.ErrNotFound)).To(BeTrue())
		})

		It("survives a cold cache", func() {
			vid, err := store.Virtualize(ctx, "abc123", srvA)
			Expect(err).NotTo(HaveOccurred())

			// A fresh store over the same database has empty caches.
			cold := idmap.New(db, writeguard.New())
			DeferCleanup(cold.Stop)

			r, err := cold.Resolve(ctx, vid)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.OriginalID).To(Equal("abc123"))
			Expect(r.ServerID).To(Equal(srvA.ID))
		})
	})

	Describe("ResolveWithServer", func() {
		It("loads the server row", func() {
			vid, err := store.Virtualize(ctx, "abc123", srvB)
			Expect(err).NotTo(HaveOccurred())

			r, srv, err := store.ResolveWithServer(ctx, vid)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.OriginalID).To(Equal("abc123"))
			Expect(srv.ID).To(Equal(srvB.ID))
			Expect(srv.URL).To(Equal("http://b.local:8096"))
		})
	})

	Describe("Prewarm", func() {
		It("caches existing mappings in one query", func() {
			vid1, err := store.Virtualize(ctx, "item-1", srvA)
			Expect(err).NotTo(HaveOccurred())
			vid2, err := store.Virtualize(ctx, "item-2", srvA)
			Expect(err).NotTo(HaveOccurred())

			cold := idmap.New(db, writeguard.New())
			DeferCleanup(cold.Stop)
			Expect(cold.Prewarm(ctx, srvA, []string{"item-1", "item-2", "item-3"})).To(Succeed())

			got1, err := cold.Virtualize(ctx, "item-1", srvA)
			Expect(err).NotTo(HaveOccurred())
			Expect(got1).To(Equal(vid1))
			got2, err := cold.Virtualize(ctx, "item-2", srvA)
			Expect(err).NotTo(HaveOccurred())
			Expect(got2).To(Equal(vid2))
		})
	})

	Describe("PurgeServer", func() {
		It("deletes mappings and invalidates cached entries", func() {
			vidA, err := store.Virtualize(ctx, "item-a", srvA)
			Expect(err).NotTo(HaveOccurred())
			vidB, err := store.Virtualize(ctx, "item-b", srvB)
			Expect(err).NotTo(HaveOccurred())

			n, err := store.PurgeServer(ctx, srvA.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))

			_, err = store.Resolve(ctx, vidA)
			Expect(errors.Is(err, idmap.ErrNotFound)).To(BeTrue())

			// Other servers' mappings are untouched.
			r, err := store.Resolve(ctx, vidB)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.OriginalID).To(Equal("item-b"))

			// Re-virtualizing after a purge mints a fresh ID.
			fresh, err := store.Virtualize(ctx, "item-a", srvA)
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh).NotTo(Equal(vidA))
		})
	})
})

var _ = DescribeTable("Normalize",
	func(in, want string) {
		Expect(idmap.Normalize(in)).To(Equal(want))
	},
	Entry("simple form passes through", "550e8400e29b41d4a716446655440000", "550e8400e29b41d4a716446655440000"),
	Entry("hyphenated is flattened", "550e8400-e29b-41d4-a716-446655440000", "550e8400e29b41d4a716446655440000"),
	Entry("upper-case is lowered", "550E8400-E29B-41D4-A716-446655440000", "550e8400e29b41d4a716446655440000"),
	Entry("braced form is unwrapped", "{550e8400-e29b-41d4-a716-446655440000}", "550e8400e29b41d4a716446655440000"),
	Entry("urn prefix is stripped", "urn:uuid:550e8400-e29b-41d4-a716-446655440000", "550e8400e29b41d4a716446655440000"),
	Entry("non-UUID passes verbatim", "merged-1234", "merged-1234"),
	Entry("short hex passes verbatim", "abc123", "abc123"),
	Entry("empty passes verbatim", "", ""),
)

var _ = DescribeTable("IsIDLike",
	func(in string, want bool) {
		Expect(idmap.IsIDLike(in)).To(Equal(want))
	},
	Entry("simple UUID", "550e8400e29b41d4a716446655440000", true),
	Entry("hyphenated UUID", "550e8400-e29b-41d4-a716-446655440000", true),
	Entry("route word", "Items", false),
	Entry("numeric code", "123456", false),
	Entry("empty", "", false),
)
