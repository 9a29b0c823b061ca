package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"placement_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const AdminContextKey = "admin"

var (
	ErrMissingToken   = errors.New("missing bearer token")
	ErrMissingSubject = errors.New("token has no subject")
	ErrNotAdmin       = errors.New("email is not an admin")
	ErrAuthDisabled   = errors.New("admin auth has no signing secret")
)

// AdminClaims is the subset of the auth provider's access token we rely on.
type AdminClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Admin identifies the caller of an admin route.
type Admin struct {
	ID    string
	Email string
}

// AdminAuth verifies an HS256 access token. When allowedEmails is non-empty the
// email claim must be in it (case-insensitive).
type AdminAuth struct {
	secret  []byte
	allowed map[string]struct{}
}

func NewAdminAuth(secret string, allowedEmails []string) *AdminAuth {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			allowed[e] = struct{}{}
		}
	}
	return &AdminAuth{secret: []byte(secret), allowed: allowed}
}

// Verify returns the admin identified by a raw token.
func (a *AdminAuth) Verify(raw string) (Admin, error) {
	if len(a.secret) == 0 {
		return Admin{}, ErrAuthDisabled
	}
	if raw == "" {
		return Admin{}, ErrMissingToken
	}
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Admin{}, err
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Admin{}, ErrMissingSubject
	}
	if len(a.allowed) > 0 {
		if _, ok := a.allowed[strings.ToLower(claims.Email)]; !ok {
			return Admin{}, ErrNotAdmin
		}
	}
	return Admin{ID: claims.Subject, Email: claims.Email}, nil
}

// Middleware rejects requests without a valid admin token with 401.
func (a *AdminAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := a.Verify(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", c.GetString(requestIDKey)).
				Str("path", c.Request.URL.Path).
				Msg("[auth] admin rejected")
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(AdminContextKey, admin)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
