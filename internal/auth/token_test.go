package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

const testSecret = "test-secret-key-for-token-manager"

func signTestToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return raw
}

func TestTokenManagerRoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	t.Run("super admin", func(t *testing.T) {
		raw, err := m.Issue(&domain.Identity{Role: domain.RoleSuperAdmin})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		identity := m.Verify(raw)
		if identity == nil {
			t.Fatal("expected identity, got nil")
		}
		if identity.Role != domain.RoleSuperAdmin {
			t.Errorf("expected role %s, got %s", domain.RoleSuperAdmin, identity.Role)
		}
		if identity.OrganizationID != "" {
			t.Errorf("expected empty org id, got %s", identity.OrganizationID)
		}
	})

	t.Run("organization", func(t *testing.T) {
		raw, err := m.Issue(&domain.Identity{Role: domain.RoleOrganization, OrganizationID: "org-1"})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		identity := m.Verify(raw)
		if identity == nil {
			t.Fatal("expected identity, got nil")
		}
		if identity.Role != domain.RoleOrganization {
			t.Errorf("expected role %s, got %s", domain.RoleOrganization, identity.Role)
		}
		if identity.OrganizationID != "org-1" {
			t.Errorf("expected org id 'org-1', got '%s'", identity.OrganizationID)
		}
	})
}

func TestTokenManagerVerifyDegradesToNil(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	t.Run("empty token", func(t *testing.T) {
		if identity := m.Verify(""); identity != nil {
			t.Errorf("expected nil identity, got %+v", identity)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		if identity := m.Verify("not-a-valid-jwt"); identity != nil {
			t.Errorf("expected nil identity, got %+v", identity)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		raw := signTestToken(t, jwt.MapClaims{
			"role":   string(domain.RoleOrganization),
			"org_id": "org-1",
			"exp":    time.Now().Add(-time.Hour).Unix(),
		}, testSecret)

		if identity := m.Verify(raw); identity != nil {
			t.Errorf("expected nil identity, got %+v", identity)
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		raw := signTestToken(t, jwt.MapClaims{
			"role": string(domain.RoleSuperAdmin),
			"exp":  time.Now().Add(time.Hour).Unix(),
		}, "some-other-secret")

		if identity := m.Verify(raw); identity != nil {
			t.Errorf("expected nil identity, got %+v", identity)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		raw := signTestToken(t, jwt.MapClaims{
			"role": "INTERN",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}, testSecret)

		if identity := m.Verify(raw); identity != nil {
			t.Errorf("expected nil identity, got %+v", identity)
		}
	})

	t.Run("organization token without org id", func(t *testing.T) {
		raw := signTestToken(t, jwt.MapClaims{
			"role": string(domain.RoleOrganization),
			"exp":  time.Now().Add(time.Hour).Unix(),
		}, testSecret)

		if identity := m.Verify(raw); identity != nil {
			t.Errorf("expected nil identity, got %+v", identity)
		}
	})

	t.Run("unsigned token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"role": string(domain.RoleSuperAdmin),
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}

		if identity := m.Verify(raw); identity != nil {
			t.Errorf("expected nil identity, got %+v", identity)
		}
	})
}

func TestTokenManagerDefaultTTL(t *testing.T) {
	m := NewTokenManager(testSecret, 0)
	if m.ttl != DefaultTokenTTL {
		t.Errorf("expected ttl %v, got %v", DefaultTokenTTL, m.ttl)
	}
}
