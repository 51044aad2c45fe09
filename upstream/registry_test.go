package upstream_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/upstream"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

var _ = DescribeTable("NormalizeURL",
	func(in, want string, wantErr bool) {
		got, err := upstream.NormalizeURL(in)
		if wantErr {
			Expect(err).To(HaveOccurred())
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	},
	Entry("plain", "http://nas:8096", "http://nas:8096", false),
	Entry("trailing slash trimmed", "http://nas:8096/", "http://nas:8096", false),
	Entry("path trailing slash trimmed", "https://media.example.com/jellyfin/", "https://media.example.com/jellyfin", false),
	Entry("host lower-cased", "HTTP://NAS:8096", "http://nas:8096", false),
	Entry("surrounding whitespace", "  http://nas:8096  ", "http://nas:8096", false),
	Entry("missing scheme", "nas:8096", "", true),
	Entry("unsupported scheme", "ftp://nas", "", true),
	Entry("empty", "", "", true),
)

var _ = Describe("Registry", func() {
	var (
		ctx context.Context
		reg *upstream.Registry
	)

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		reg = upstream.NewRegistry(db, writeguard.New())
	})

	Describe("Add", func() {
		It("stores the normalized URL", func() {
			srv, err := reg.Add(ctx, "Main", "http://NAS:8096/", 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(srv.URL).To(Equal("http://nas:8096"))
			Expect(srv.Priority).To(Equal(100))
		})

		It("rejects a duplicate URL even in a different spelling", func() {
			_, err := reg.Add(ctx, "Main", "http://nas:8096", 100)
			Expect(err).NotTo(HaveOccurred())

			_, err = reg.Add(ctx, "Other", "HTTP://nas:8096/", 50)
			Expect(errors.Is(err, upstream.ErrDuplicate)).To(BeTrue())
		})

		It("rejects a duplicate name", func() {
			_, err := reg.Add(ctx, "Main", "http://a:8096", 100)
			Expect(err).NotTo(HaveOccurred())

			_, err = reg.Add(ctx, "Main", "http://b:8096", 100)
			Expect(errors.Is(err, upstream.ErrDuplicate)).To(BeTrue())
		})

		It("rejects an empty name", func() {
			_, err := reg.Add(ctx, "  ", "http://a:8096", 100)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("List", func() {
		It("orders by priority descending, name ascending", func() {
			_, err := reg.Add(ctx, "Beta", "http://beta:8096", 100)
			Expect(err).NotTo(HaveOccurred())
			_, err = reg.Add(ctx, "Alpha", "http://alpha:8096", 100)
			Expect(err).NotTo(HaveOccurred())
			_, err = reg.Add(ctx, "Main", "http://main:8096", 200)
			Expect(err).NotTo(HaveOccurred())

			servers, err := reg.List(ctx)
			Expect(err).NotTo(HaveOccurred())

			names := make([]string, len(servers))
			for i, s := range servers {
				names[i] = s.Name
			}
			Expect(names).To(Equal([]string{"Main", "Alpha", "Beta"}))
		})
	})

	Describe("Best", func() {
		It("returns ErrNoServers on an empty registry", func() {
			_, err := reg.Best(ctx)
			Expect(errors.Is(err, upstream.ErrNoServers)).To(BeTrue())
		})

		It("returns the highest-priority server without a monitor", func() {
			_, err := reg.Add(ctx, "Backup", "http://backup:8096", 50)
			Expect(err).NotTo(HaveOccurred())
			_, err = reg.Add(ctx, "Main", "http://main:8096", 200)
			Expect(err).NotTo(HaveOccurred())

			best, err := reg.Best(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(best.Name).To(Equal("Main"))
		})

		It("skips servers the monitor reports unavailable", func() {
			main, err := reg.Add(ctx, "Main", "http://main:8096", 200)
			Expect(err).NotTo(HaveOccurred())
			_, err = reg.Add(ctx, "Backup", "http://backup:8096", 50)
			Expect(err).NotTo(HaveOccurred())

			pool := upstream.NewPool(config.Config{})
			mon := upstream.NewMonitor(db, pool, writeguard.New(), 0)
			reg.SetMonitor(mon)
			for i := 0; i < 5; i++ {
				mon.RecordRequestFailure(main.ID, main.Name)
			}

			best, err := reg.Best(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(best.Name).To(Equal("Backup"))
		})

		It("falls back to priority order when every server is down", func() {
			main, err := reg.Add(ctx, "Main", "http://main:8096", 200)
			Expect(err).NotTo(HaveOccurred())

			pool := upstream.NewPool(config.Config{})
			mon := upstream.NewMonitor(db, pool, writeguard.New(), 0)
			reg.SetMonitor(mon)
			for i := 0; i < 5; i++ {
				mon.RecordRequestFailure(main.ID, main.Name)
			}

			best, err := reg.Best(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(best.ID).To(Equal(main.ID))
		})
	})

	Describe("Update", func() {
		It("applies only the provided fields", func() {
			srv, err := reg.Add(ctx, "Main", "http://main:8096", 100)
			Expect(err).NotTo(HaveOccurred())

			p := 250
			updated, err := reg.Update(ctx, srv.ID, nil, nil, &p)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Priority).To(Equal(250))
			Expect(updated.Name).To(Equal("Main"))
			Expect(updated.URL).To(Equal("http://main:8096"))
		})

		It("normalizes an updated URL", func() {
			srv, err := reg.Add(ctx, "Main", "http://main:8096", 100)
			Expect(err).NotTo(HaveOccurred())

			u := "HTTP://other:8096/"
			updated, err := reg.Update(ctx, srv.ID, nil, &u, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.URL).To(Equal("http://other:8096"))
		})
	})

	Describe("Delete", func() {
		It("removes the server and its health history", func() {
			srv, err := reg.Add(ctx, "Main", "http://main:8096", 100)
			Expect(err).NotTo(HaveOccurred())
			db.HealthCheck.Create().SetServer(srv).SetHealthy(true).SaveX(ctx)

			Expect(reg.Delete(ctx, srv.ID)).To(Succeed())
			Expect(db.Server.Query().CountX(ctx)).To(BeZero())
			Expect(db.HealthCheck.Query().CountX(ctx)).To(BeZero())
		})
	})
})
