package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ofi/database"

	"github.com/jmoiron/sqlx"
)

// SessionCookieName はログインセッションのクッキー名です。
const SessionCookieName = "ofi_session"

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler は users テーブルと照合し、成功時にセッションクッキーを発行します。
func LoginHandler(db *sqlx.DB, store *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		ok, err := database.CheckCredentials(db, payload.Username, payload.Password)
		if err != nil {
			log.Printf("ERROR: Failed to check credentials for %s: %v", payload.Username, err)
			http.Error(w, "Failed to check credentials", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "Invalid credentials.", http.StatusUnauthorized)
			return
		}

		token := store.Create(payload.Username)
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message":  fmt.Sprintf("Welcome, %s!", payload.Username),
			"username": payload.Username,
		})
	}
}

// LogoutHandler はセッションを破棄し、クッキーを失効させます。
func LogoutHandler(store *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			store.Delete(cookie.Value)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Logged out."})
	}
}

// SessionHandler は現在のログイン状態を返します。
func SessionHandler(store *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(r, store)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"authenticated": ok,
			"username":      username,
		})
	}
}

// Require は有効なセッションが無いリクエストを401で弾くミドルウェアです。
func Require(store *SessionStore, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(r, store); !ok {
			http.Error(w, "Authentication required.", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func currentUser(r *http.Request, store *SessionStore) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}
	return store.Get(cookie.Value)
}
