package server

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// AuthService exchanges the configured access code for a short-lived
// session token. The code is the only credential; there are no user
// accounts.
type AuthService struct {
	accessCode string
	hmac       []byte
	ttl        time.Duration
}

func NewAuthService(accessCode, secret string) *AuthService {
	return &AuthService{
		accessCode: accessCode,
		hmac:       []byte(secret),
		ttl:        8 * time.Hour,
	}
}

// CheckCode compares the presented access code in constant time.
func (a *AuthService) CheckCode(code string) bool {
	return subtle.ConstantTimeCompare([]byte(code), []byte(a.accessCode)) == 1
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueToken signs a token bound to one working session.
func (a *AuthService) IssueToken(sessionID string) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mcqgen",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.hmac)
}

// ParseToken validates a token and returns its session id.
func (a *AuthService) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return a.hmac, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.SessionID == "" {
		return "", errors.New("missing session claim")
	}
	return claims.SessionID, nil
}

// Middleware requires a Bearer token and rejects everything else.
func (a *AuthService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		sid, err := a.ParseToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSessionID(r.Context(), sid)))
	})
}
