package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// Token claim keys
const (
	claimRole  = "role"
	claimOrgID = "org_id"
)

// DefaultTokenTTL is how long an issued token stays valid
const DefaultTokenTTL = 4 * time.Hour

// TokenManager issues and verifies signed identity tokens
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager with the given HMAC secret and TTL.
// A zero ttl falls back to DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the identity's role and, for organization
// callers, its tenant id.
func (m *TokenManager) Issue(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		claimRole: string(identity.Role),
		"exp":     time.Now().Add(m.ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	if identity.Role == domain.RoleOrganization {
		claims[claimOrgID] = identity.OrganizationID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses a raw token and returns the caller identity it encodes.
// It never returns an error: absent, malformed, tampered, and expired tokens
// all degrade to a nil identity. Distinguishing "valid token, insufficient
// role" from "no token" is the policy's job, not the verifier's.
func (m *TokenManager) Verify(raw string) *domain.Identity {
	if raw == "" {
		return nil
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	role, _ := claims[claimRole].(string)
	switch domain.Role(role) {
	case domain.RoleSuperAdmin:
		return &domain.Identity{Role: domain.RoleSuperAdmin}
	case domain.RoleOrganization:
		orgID, _ := claims[claimOrgID].(string)
		if orgID == "" {
			return nil
		}
		return &domain.Identity{Role: domain.RoleOrganization, OrganizationID: orgID}
	default:
		return nil
	}
}
