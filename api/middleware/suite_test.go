package middleware_test

import (
	"database/sql"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/ent"
	"github.com/jellyswarrm/jellyswarrm/ent/enttest"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers as "sqlite"; ent expects "sqlite3".
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)
}

var db *ent.Client

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)

	BeforeSuite(func() {
		db = enttest.Open(t, "sqlite3",
			"file:middleware_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	})

	AfterSuite(func() {
		if db != nil {
			Expect(db.Close()).To(Succeed())
		}
	})

	RunSpecs(t, "Middleware Suite")
}
