package auth

import (
	"net/http"
)

// SessionCookieName is the fixed name of the admin session cookie.
const SessionCookieName = "itscoreye_admin_session"

// CookieConfig holds session cookie settings
type CookieConfig struct {
	Secure bool // HTTPS only; disabled for local development
}

// SetSessionCookie attaches the session token in an httpOnly cookie.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge int, config CookieConfig) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true, // Prevents JavaScript access (XSS protection)
		Secure:   config.Secure,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, cookie)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, config CookieConfig) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // Serialized as Max-Age=0, deleting the cookie
		HttpOnly: true,
		Secure:   config.Secure,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, cookie)
}

// GetSessionCookie retrieves the session token from the request cookies.
func GetSessionCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
