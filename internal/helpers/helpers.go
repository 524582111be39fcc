package helpers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	AppMetadata struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
		Roles     []string `json:"roles,omitempty"`
	} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// AppRole is the PlaySpot role ("owner", "player", "admin"), as opposed to
// Supabase's own "authenticated" role claim.
func (c *CustomClaims) AppRole() string {
	if r, ok := c.UserMetadata["role"].(string); ok && r != "" {
		return strings.ToLower(r)
	}
	if len(c.AppMetadata.Roles) > 0 {
		return strings.ToLower(c.AppMetadata.Roles[0])
	}
	return ""
}

// TokenValidator checks Supabase access tokens against the project's JWKS.
type TokenValidator interface {
	ValidateToken(tokenStr string) (*CustomClaims, error)
}

type JWKSValidator struct {
	jwks *keyfunc.JWKS
}

func NewJWKSValidator(ctx context.Context, supabaseURL string) (*JWKSValidator, error) {
	if supabaseURL == "" {
		return nil, errors.New("SUPABASE_URL not set")
	}
	jwksURL := fmt.Sprintf("%s/auth/v1/.well-known/jwks.json", strings.TrimRight(supabaseURL, "/"))

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS: %w", err)
	}
	return &JWKSValidator{jwks: jwks}, nil
}

func (v *JWKSValidator) ValidateToken(tokenStr string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, v.jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

func (v *JWKSValidator) Close() {
	v.jwks.EndBackground()
}

// StringTrim strips whitespace and the stray quotes clients sometimes wrap ids in.
func StringTrim(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'")
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
