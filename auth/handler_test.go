package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ofi/testutil"
)

func postLogin(t *testing.T, db *sqlx.DB, store *SessionStore, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	LoginHandler(db, store)(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginWithSeededCredentials(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSessionStore()

	rr := postLogin(t, db, store, "admin", "admin123")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	cookie := sessionCookie(t, rr)
	username, ok := store.Get(cookie.Value)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSessionStore()

	rr := postLogin(t, db, store, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = postLogin(t, db, store, "nobody", "admin123")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireMiddleware(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSessionStore()

	protected := Require(store, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// セッションなし
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()
	protected(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// ログイン後
	login := postLogin(t, db, store, "user1", "password1")
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	protected(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSessionStore()

	login := postLogin(t, db, store, "admin", "admin123")
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	LogoutHandler(store)(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	_, ok := store.Get(cookie.Value)
	assert.False(t, ok)
}

func TestSessionHandler(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewSessionStore()

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rr := httptest.NewRecorder()
	SessionHandler(store)(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Authenticated bool   `json:"authenticated"`
		Username      string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Authenticated)

	login := postLogin(t, db, store, "admin", "admin123")
	cookie := sessionCookie(t, login)

	req = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	SessionHandler(store)(rr, req)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	assert.Equal(t, "admin", resp.Username)
}
