package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisManager keeps sessions server-side in Redis behind an opaque random
// token. Unlike the cookie backend, Clear revokes the session immediately
// for every client holding the token.
type RedisManager struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

func NewRedisManager(client *redis.Client, ttl time.Duration, secure bool) *RedisManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisManager{client: client, ttl: ttl, secure: secure}
}

func (m *RedisManager) Get(c echo.Context) (int64, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}

	val, err := m.client.Get(c.Request().Context(), redisKeyPrefix+cookie.Value).Result()
	if err != nil {
		return 0, false
	}

	uid, err := strconv.ParseInt(val, 10, 64)
	if err != nil || uid <= 0 {
		return 0, false
	}
	return uid, true
}

func (m *RedisManager) Set(c echo.Context, userID int64) error {
	token, err := newToken()
	if err != nil {
		return err
	}

	key := redisKeyPrefix + token
	if err := m.client.Set(c.Request().Context(), key, strconv.FormatInt(userID, 10), m.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	c.SetCookie(m.cookie(token, m.ttl))
	return nil
}

func (m *RedisManager) Clear(c echo.Context) {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		_ = m.client.Del(c.Request().Context(), redisKeyPrefix+cookie.Value).Err()
	}
	c.SetCookie(m.cookie("", -time.Hour))
}

func (m *RedisManager) cookie(value string, ttl time.Duration) *http.Cookie {
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

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
