package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"ofi/loader"
)

// NewTestDB はスキーマ適用・初期データ投入済みのインメモリDBを返します。
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// :memory: はコネクションごとに別DBになるため1本に固定する
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, loader.InitDatabase(db))
	return db
}
