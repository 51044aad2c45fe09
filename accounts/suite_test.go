package accounts_test

import (
	"context"
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

func TestAccounts(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Accounts Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3", "file:accounts_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
})

var _ = AfterSuite(func() {
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

func cleanDB() {
	ctx := context.Background()
	db.AuthSession.Delete().ExecX(ctx)
	db.ServerMapping.Delete().ExecX(ctx)
	db.User.Delete().ExecX(ctx)
	db.Server.Delete().ExecX(ctx)
}
