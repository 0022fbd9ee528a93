package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CheckCredentials は users テーブルと照合します。
// パスワードは原本仕様のまま平文比較です (ローカル単一ユーザー前提)。
func CheckCredentials(db *sqlx.DB, username, password string) (bool, error) {
	var stored string
	err := db.Get(&stored, `SELECT password FROM users WHERE username = ?`, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("CheckCredentials (User: %s) failed: %w", username, err)
	}
	return stored == password, nil
}
