package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims accepted on admin requests.
type Claims struct {
	Subject string `json:"sub_name,omitempty"`
	jwt.RegisteredClaims
}

type contextKeyAdminSubject struct{}

// AdminSubject returns the authenticated admin subject from the context, or
// "" outside an authenticated admin request.
func AdminSubject(ctx context.Context) string {
	subject, _ := ctx.Value(contextKeyAdminSubject{}).(string)
	return subject
}

// RequireAdmin guards admin endpoints with an HMAC-signed bearer token.
func RequireAdmin(signingKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	key := []byte(signingKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "admin request without bearer token",
					"request_id", chimw.GetReqID(ctx),
				)
				unauthorized(w)
				return
			}

			claims := &Claims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenUnverifiable
				}
				return key, nil
			})
			if err != nil || !parsed.Valid {
				reason := "invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					reason = "token expired"
				}
				logger.WarnContext(ctx, "admin request rejected",
					"request_id", chimw.GetReqID(ctx),
					"reason", reason,
				)
				unauthorized(w)
				return
			}

			ctx = context.WithValue(ctx, contextKeyAdminSubject{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SignAdminToken mints an admin token, used by ops tooling and tests.
func SignAdminToken(signingKey, subject string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    "idcheck",
		},
	})
	return token.SignedString([]byte(signingKey))
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
