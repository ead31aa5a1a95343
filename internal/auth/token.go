package auth

import (
	"fmt"
	"strings"

	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload of the signed session credential.
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier decodes signed session tokens into identities.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Identity resolves a raw token into the caller's identity. Callers treat any
// error as "anonymous"; invalid credentials are not a request failure.
func (v *Verifier) Identity(token string) (*models.Identity, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	role := models.RoleUser
	if models.Role(claims.Role) == models.RoleAdmin {
		role = models.RoleAdmin
	}

	return &models.Identity{
		ID:    id,
		Email: claims.Email,
		Role:  role,
	}, nil
}

// Sign issues a session token; used by the seeder and by tests.
func (v *Verifier) Sign(identity *models.Identity) (string, error) {
	claims := &SessionClaims{
		Email: identity.Email,
		Role:  string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: identity.ID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// BearerToken pulls the credential out of an Authorization header value.
// Empty when the header is missing or not a bearer scheme.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, prefix))
	}
	return ""
}
