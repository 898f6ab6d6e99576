package session

import (
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// FlashCookie carries one-time data from a redirect to the next page
	FlashCookie = "directory_flash"

	flashContextKey = "flash"
	flashTTL        = 5 * time.Minute

	// maxCookieBytes leaves room for the cookie name and attributes under the 4096 byte browser limit
	maxCookieBytes   = 3800
	maxOldValueRunes = 255
)

// Flash is the one-time data carried across a redirect
type Flash struct {
	Success string            `json:"success,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Old     map[string]string `json:"old,omitempty"`
}

// Empty reports whether the flash carries nothing
func (f Flash) Empty() bool {
	return f.Success == "" && len(f.Errors) == 0 && len(f.Old) == 0
}

type flashClaims struct {
	Flash
	jwt.RegisteredClaims
}

// FlashStore keeps flash data in an HMAC-signed cookie
type FlashStore struct {
	secret []byte
	secure bool
}

// NewFlashStore creates a flash store signing with secret
func NewFlashStore(secret string, secure bool) *FlashStore {
	return &FlashStore{secret: []byte(secret), secure: secure}
}

// Put replaces the pending flash with f. An empty flash clears any pending one.
func (s *FlashStore) Put(c *gin.Context, f Flash) error {
	if f.Empty() {
		s.setCookie(c, "", -1)
		return nil
	}

	f.Old = truncateOld(f.Old)
	token, err := s.sign(f)
	if err != nil {
		return err
	}
	// old input goes first when the cookie would not fit in a browser
	if len(token) > maxCookieBytes && len(f.Old) > 0 {
		f.Old = nil
		if token, err = s.sign(f); err != nil {
			return err
		}
	}
	if len(token) > maxCookieBytes {
		return fmt.Errorf("flash of %d bytes exceeds the %d byte cookie limit", len(token), maxCookieBytes)
	}

	s.setCookie(c, token, int(flashTTL.Seconds()))
	return nil
}

func (s *FlashStore) sign(f Flash) (string, error) {
	now := time.Now()
	claims := &flashClaims{
		Flash: f,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(flashTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign flash: %w", err)
	}
	return token, nil
}

// truncateOld caps every re-populated value at the longest length any form accepts
func truncateOld(old map[string]string) map[string]string {
	if len(old) == 0 {
		return old
	}
	capped := make(map[string]string, len(old))
	for k, v := range old {
		if utf8.RuneCountInString(v) > maxOldValueRunes {
			v = string([]rune(v)[:maxOldValueRunes])
		}
		capped[k] = v
	}
	return capped
}

// Pull returns the flash sent by the previous response and clears it.
// Repeated calls within one request return the same value.
func (s *FlashStore) Pull(c *gin.Context) Flash {
	if cached, ok := c.Get(flashContextKey); ok {
		if f, ok := cached.(Flash); ok {
			return f
		}
	}

	var f Flash
	if raw, err := c.Cookie(FlashCookie); err == nil && raw != "" {
		if parsed, err := s.parse(raw); err == nil {
			f = parsed
		}
		s.setCookie(c, "", -1)
	}
	c.Set(flashContextKey, f)
	return f
}

func (s *FlashStore) parse(raw string) (Flash, error) {
	claims := &flashClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Flash{}, fmt.Errorf("failed to parse flash: %w", err)
	}
	if !token.Valid {
		return Flash{}, fmt.Errorf("invalid flash")
	}
	return claims.Flash, nil
}

func (s *FlashStore) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, value, maxAge, "/", "", s.secure, true)
}
