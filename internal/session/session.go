// Package session carries the auth token between the browser and the web
// tier. The token lives in a single cookie and is passed around explicitly;
// nothing in the process keeps per-user state.
package session

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// CookieName matches the cookie the original screens read.
const CookieName = "authToken"

// DefaultTTL is how long a login survives before the cookie expires.
const DefaultTTL = 90 * time.Minute

var ErrNoToken = errors.New("session: no auth token")

// Token extracts the auth token from the request's cookie. A missing or
// blank cookie aborts the operation before any remote call is made.
func Token(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", ErrNoToken
	}
	token := strings.TrimSpace(cookie.Value)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Write sets the token cookie with the given lifetime.
func Write(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the token cookie, logging the user out client-side.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
