package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/config"
	"github.com/jellyswarrm/jellyswarrm/upstream"
	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

var _ = Describe("Monitor", func() {
	var (
		ctx  context.Context
		pool *upstream.Pool
		mon  *upstream.Monitor
	)

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		pool = upstream.NewPool(config.Config{})
		mon = upstream.NewMonitor(db, pool, writeguard.New(), 0)
	})

	It("assumes unchecked servers are available", func() {
		srv := db.Server.Create().SetName("A").SetURL("http://a.invalid:8096").SaveX(ctx)
		Expect(mon.IsAvailable(srv.ID)).To(BeTrue())
	})

	It("marks a healthy server available and records its version", func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/System/Info/Public"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Version":"10.9.1","ServerName":"fake"}`))
		}))
		DeferCleanup(ts.Close)

		srv := db.Server.Create().SetName("A").SetURL(ts.URL).SaveX(ctx)
		mon.CheckNow(ctx)

		Expect(mon.IsAvailable(srv.ID)).To(BeTrue())
		statuses := mon.Statuses()
		Expect(statuses).To(HaveLen(1))
		Expect(statuses[0].Version).To(Equal("10.9.1"))
		Expect(statuses[0].Available).To(BeTrue())
	})

	It("requires two consecutive failures before flipping unavailable", func() {
		var healthy atomic.Bool
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if healthy.Load() {
				_, _ = w.Write([]byte(`{"Version":"10.9.1"}`))
				return
			}
			w.WriteHeader(http.StatusBadGateway)
		}))
		DeferCleanup(ts.Close)

		srv := db.Server.Create().SetName("A").SetURL(ts.URL).SaveX(ctx)

		mon.CheckNow(ctx)
		Expect(mon.IsAvailable(srv.ID)).To(BeTrue(), "one failure must not flip the server")

		mon.CheckNow(ctx)
		Expect(mon.IsAvailable(srv.ID)).To(BeFalse())

		// A single success restores it.
		healthy.Store(true)
		mon.CheckNow(ctx)
		Expect(mon.IsAvailable(srv.ID)).To(BeTrue())
	})

	It("persists one row per probe", func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"Version":"10.9.1"}`))
		}))
		DeferCleanup(ts.Close)

		srv := db.Server.Create().SetName("A").SetURL(ts.URL).SaveX(ctx)
		mon.CheckNow(ctx)
		mon.CheckNow(ctx)

		rows := db.HealthCheck.Query().AllX(ctx)
		Expect(rows).To(HaveLen(2))
		for _, row := range rows {
			Expect(row.Healthy).To(BeTrue())
			Expect(row.ResponseTimeMs).NotTo(BeNil())
		}
		_ = srv
	})

	It("records the error message for failed probes", func() {
		srv := db.Server.Create().SetName("A").SetURL("http://127.0.0.1:1").SaveX(ctx)
		mon.CheckNow(ctx)

		rows := db.HealthCheck.Query().AllX(ctx)
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Healthy).To(BeFalse())
		Expect(rows[0].ErrorMessage).NotTo(BeNil())
		_ = srv
	})

	Describe("circuit breaker", func() {
		It("trips after five live-request failures and resets on a successful probe", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			}))
			DeferCleanup(ts.Close)

			srv := db.Server.Create().SetName("A").SetURL(ts.URL).SaveX(ctx)

			for i := 0; i < 4; i++ {
				mon.RecordRequestFailure(srv.ID, srv.Name)
			}
			Expect(mon.IsAvailable(srv.ID)).To(BeTrue())

			mon.RecordRequestFailure(srv.ID, srv.Name)
			Expect(mon.IsAvailable(srv.ID)).To(BeFalse())

			mon.CheckNow(ctx)
			Expect(mon.IsAvailable(srv.ID)).To(BeTrue())
		})

		It("resets the counter on request success", func() {
			srv := db.Server.Create().SetName("A").SetURL("http://a.invalid:8096").SaveX(ctx)

			for i := 0; i < 4; i++ {
				mon.RecordRequestFailure(srv.ID, srv.Name)
			}
			mon.RecordRequestSuccess(srv.ID)
			mon.RecordRequestFailure(srv.ID, srv.Name)
			Expect(mon.IsAvailable(srv.ID)).To(BeTrue())
		})
	})
})
