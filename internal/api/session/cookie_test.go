package session

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func contextWithCookies(e *echo.Echo, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCookieManager_RoundTrip(t *testing.T) {
	e := echo.New()
	mgr := NewCookieManager("secret", time.Hour, false)

	c, rec := contextWithCookies(e, nil)
	if err := mgr.Set(c, 42); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("expected one session cookie, got %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}

	c2, _ := contextWithCookies(e, cookies)
	uid, ok := mgr.Get(c2)
	if !ok || uid != 42 {
		t.Fatalf("expected uid 42, got %d ok=%v", uid, ok)
	}
}

func TestCookieManager_NoCookie(t *testing.T) {
	e := echo.New()
	mgr := NewCookieManager("secret", time.Hour, false)

	c, _ := contextWithCookies(e, nil)
	if _, ok := mgr.Get(c); ok {
		t.Fatalf("expected no identity without a cookie")
	}
}

func TestCookieManager_TamperedTokenRejected(t *testing.T) {
	e := echo.New()
	mgr := NewCookieManager("secret", time.Hour, false)

	c, rec := contextWithCookies(e, nil)
	if err := mgr.Set(c, 7); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	cookie := rec.Result().Cookies()[0]
	// Flip part of the signature.
	cookie.Value = cookie.Value[:len(cookie.Value)-2] + "xx"

	c2, _ := contextWithCookies(e, []*http.Cookie{cookie})
	if _, ok := mgr.Get(c2); ok {
		t.Fatalf("tampered session token must be rejected")
	}
}

func TestCookieManager_WrongSecretRejected(t *testing.T) {
	e := echo.New()
	mgr := NewCookieManager("secret", time.Hour, false)
	other := NewCookieManager("other-secret", time.Hour, false)

	c, rec := contextWithCookies(e, nil)
	if err := mgr.Set(c, 7); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	c2, _ := contextWithCookies(e, rec.Result().Cookies())
	if _, ok := other.Get(c2); ok {
		t.Fatalf("token signed with another secret must be rejected")
	}
}

func TestCookieManager_ClearExpiresCookie(t *testing.T) {
	e := echo.New()
	mgr := NewCookieManager("secret", time.Hour, false)

	c, rec := contextWithCookies(e, nil)
	mgr.Clear(c)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected a clearing cookie, got %d", len(cookies))
	}
	if cookies[0].Value != "" || !cookies[0].Expires.Before(time.Now()) {
		t.Fatalf("clear must empty and expire the cookie: %+v", cookies[0])
	}
}

func TestCookieManager_RejectsForeignAlgorithm(t *testing.T) {
	e := echo.New()
	mgr := NewCookieManager("secret", time.Hour, false)

	// An unsigned token ("alg":"none") must never resolve to an identity.
	enc := base64.RawURLEncoding
	raw := enc.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`)) + "." +
		enc.EncodeToString([]byte(`{"uid":1}`)) + "."

	c, _ := contextWithCookies(e, []*http.Cookie{{Name: CookieName, Value: raw}})
	if _, ok := mgr.Get(c); ok {
		t.Fatalf("unsigned token must be rejected")
	}
}
