package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/auth"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/dto"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/repository"
)

// AuthService defines login and organization management operations
type AuthService interface {
	// SuperAdminLogin exchanges the super-admin password for a token
	SuperAdminLogin(ctx context.Context, req *dto.SuperAdminLoginRequest) (*dto.AuthResponse, error)
	// OrganizationLogin exchanges an organization's slug and password for a
	// token scoped to that tenant
	OrganizationLogin(ctx context.Context, req *dto.OrganizationLoginRequest) (*dto.AuthResponse, error)
	// CreateOrganization creates a new tenant; super admin only
	CreateOrganization(ctx context.Context, identity *domain.Identity, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error)
	// ListOrganizations enumerates all tenants; super admin only
	ListOrganizations(ctx context.Context, identity *domain.Identity) ([]dto.OrganizationResponse, error)
}

// AuthServiceConfig carries the secrets the auth service needs
type AuthServiceConfig struct {
	SuperAdminPassword string
}

type authService struct {
	orgRepo repository.OrganizationRepository
	policy  *auth.Policy
	tokens  *auth.TokenManager
	hasher  *auth.PasswordHasher
	cfg     *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(
	orgRepo repository.OrganizationRepository,
	policy *auth.Policy,
	tokens *auth.TokenManager,
	hasher *auth.PasswordHasher,
	cfg *AuthServiceConfig,
) AuthService {
	return &authService{
		orgRepo: orgRepo,
		policy:  policy,
		tokens:  tokens,
		hasher:  hasher,
		cfg:     cfg,
	}
}

// SuperAdminLogin exchanges the super-admin password for a token
func (s *authService) SuperAdminLogin(ctx context.Context, req *dto.SuperAdminLoginRequest) (*dto.AuthResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.SuperAdminPassword)) != 1 {
		return nil, ErrInvalidCredentials
	}

	identity := &domain.Identity{Role: domain.RoleSuperAdmin}
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Role: string(domain.RoleSuperAdmin)}, nil
}

// OrganizationLogin exchanges slug and password for a tenant-scoped token
func (s *authService) OrganizationLogin(ctx context.Context, req *dto.OrganizationLoginRequest) (*dto.AuthResponse, error) {
	org, err := s.orgRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	if !s.hasher.Compare(org.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	identity := &domain.Identity{Role: domain.RoleOrganization, OrganizationID: org.ID}
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Role: string(domain.RoleOrganization)}, nil
}

// CreateOrganization creates a new tenant; super admin only
func (s *authService) CreateOrganization(ctx context.Context, identity *domain.Identity, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	if !s.policy.CanCreateOrganization(identity) {
		return nil, ErrUnauthorized
	}

	exists, err := s.orgRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	org := &domain.Organization{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Slug:         req.Slug,
		ContactEmail: req.ContactEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	return dto.NewOrganizationResponse(org), nil
}

// ListOrganizations enumerates all tenants; super admin only
func (s *authService) ListOrganizations(ctx context.Context, identity *domain.Identity) ([]dto.OrganizationResponse, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	if !s.policy.CanListOrganizations(identity) {
		return nil, ErrUnauthorized
	}

	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, *dto.NewOrganizationResponse(org))
	}
	return responses, nil
}
