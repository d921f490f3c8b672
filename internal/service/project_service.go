package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/auth"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/dto"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/repository"
)

// ProjectService defines tenant-scoped project operations
type ProjectService interface {
	// List retrieves the projects visible to the caller, with computed task
	// relations. Organization callers see only their own tenant regardless
	// of any filter they might supply.
	List(ctx context.Context, identity *domain.Identity) ([]dto.ProjectResponse, error)
	// CreateOrUpdate creates a project (no id) or sparsely updates one (id
	// present) subject to the tenant policy.
	CreateOrUpdate(ctx context.Context, identity *domain.Identity, input *dto.ProjectInput) (*dto.ProjectResponse, error)
	// Stats computes per-project task aggregates for the caller's tenant;
	// organization callers only.
	Stats(ctx context.Context, identity *domain.Identity) ([]domain.ProjectStats, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	commentRepo repository.CommentRepository
	policy      *auth.Policy
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	commentRepo repository.CommentRepository,
	policy *auth.Policy,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
		policy:      policy,
	}
}

// List retrieves the projects visible to the caller
func (s *projectService) List(ctx context.Context, identity *domain.Identity) ([]dto.ProjectResponse, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	tenantFilter, ok := s.policy.ProjectScope(identity)
	if !ok {
		return nil, ErrUnauthorized
	}

	projects, err := s.projectRepo.List(ctx, tenantFilter)
	if err != nil {
		return nil, err
	}

	projectIDs := make([]string, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}
	tasksByProject, err := s.loadTasks(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, *dto.NewProjectResponse(p, tasksByProject[p.ID]))
	}
	return responses, nil
}

// CreateOrUpdate creates or sparsely updates a project
func (s *projectService) CreateOrUpdate(ctx context.Context, identity *domain.Identity, input *dto.ProjectInput) (*dto.ProjectResponse, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	if input.IsUpdate() {
		return s.update(ctx, identity, input)
	}
	return s.create(ctx, identity, input)
}

func (s *projectService) create(ctx context.Context, identity *domain.Identity, input *dto.ProjectInput) (*dto.ProjectResponse, error) {
	// The owning tenant is forced from the identity; callers never choose it.
	tenantID, ok := s.policy.CreateProjectTenant(identity)
	if !ok {
		return nil, ErrUnauthorized
	}
	if input.Name == nil || *input.Name == "" {
		return nil, ErrNameRequired
	}

	project := &domain.Project{
		ID:             uuid.New().String(),
		OrganizationID: tenantID,
		Name:           *input.Name,
		Status:         domain.ProjectStatusActive,
		CreatedAt:      time.Now().UTC(),
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.DueDate != nil && !input.DueDate.IsZero() {
		due := *input.DueDate
		project.DueDate = &due
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(project, nil), nil
}

func (s *projectService) update(ctx context.Context, identity *domain.Identity, input *dto.ProjectInput) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	// Ownership is checked before any requested field is even looked at.
	if !s.policy.CanAccessTenant(identity, project.OrganizationID) {
		return nil, ErrUnauthorized
	}

	upd := &repository.ProjectUpdate{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
	}
	if upd.IsEmpty() {
		// Nothing to change: succeed with the current state.
		return s.respond(ctx, project)
	}

	updated, err := s.projectRepo.Update(ctx, input.ID, upd, s.tenantGuard(identity))
	if err != nil {
		return nil, err
	}
	if !updated {
		// The guarded write matched no row: the project vanished or moved
		// out of scope between the read above and the write.
		return nil, s.staleWriteError(ctx, input.ID)
	}

	project, err = s.projectRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return s.respond(ctx, project)
}

// Stats computes per-project aggregates for the caller's tenant
func (s *projectService) Stats(ctx context.Context, identity *domain.Identity) ([]domain.ProjectStats, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	tenantID, ok := s.policy.StatsTenant(identity)
	if !ok {
		return nil, ErrUnauthorized
	}

	stats, err := s.projectRepo.StatsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.ProjectStats, 0, len(stats))
	for _, st := range stats {
		result = append(result, *st)
	}
	return result, nil
}

// tenantGuard returns the write-time ownership guard for the identity: empty
// for super admins (no restriction), the tenant id for organization callers.
func (s *projectService) tenantGuard(identity *domain.Identity) string {
	if identity.IsOrganization() {
		return identity.OrganizationID
	}
	return ""
}

func (s *projectService) staleWriteError(ctx context.Context, id string) error {
	current, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrProjectNotFound
	}
	return ErrUnauthorized
}

func (s *projectService) respond(ctx context.Context, project *domain.Project) (*dto.ProjectResponse, error) {
	tasksByProject, err := s.loadTasks(ctx, []string{project.ID})
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(project, tasksByProject[project.ID]), nil
}

// loadTasks fetches tasks and their comments for the given projects and
// groups them per project, preserving repository ordering.
func (s *projectService) loadTasks(ctx context.Context, projectIDs []string) (map[string][]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.ListByProjects(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}
	comments, err := s.commentRepo.ListByTasks(ctx, taskIDs)
	if err != nil {
		return nil, err
	}
	commentsByTask := make(map[string][]domain.TaskComment)
	for _, c := range comments {
		commentsByTask[c.TaskID] = append(commentsByTask[c.TaskID], *c)
	}

	grouped := make(map[string][]dto.TaskResponse)
	for _, t := range tasks {
		grouped[t.ProjectID] = append(grouped[t.ProjectID], *dto.NewTaskResponse(t, commentsByTask[t.ID]))
	}
	return grouped, nil
}
