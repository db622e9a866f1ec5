package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieManager keeps the session entirely client-side as an HS256-signed
// token in a cookie. Tampering with the user id invalidates the signature,
// so the cookie is trustworthy without any server-side state.
type CookieManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewCookieManager(secret string, ttl time.Duration, secure bool) *CookieManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CookieManager{secret: []byte(secret), ttl: ttl, secure: secure}
}

func (m *CookieManager) Get(c echo.Context) (int64, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return 0, false
	}

	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return 0, false
	}
	return int64(uid), true
}

func (m *CookieManager) Set(c echo.Context, userID int64) error {
	claims := jwt.MapClaims{
		"uid": userID,
		"exp": time.Now().Add(m.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	c.SetCookie(m.cookie(signed, m.ttl))
	return nil
}

func (m *CookieManager) Clear(c echo.Context) {
	c.SetCookie(m.cookie("", -time.Hour))
}

func (m *CookieManager) cookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
