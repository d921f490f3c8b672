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

// TaskService defines tenant-scoped task and comment operations
type TaskService interface {
	// ListByProject retrieves a project's tasks with their comments. When
	// the project is missing or outside the caller's tenant the result is an
	// empty list, not an error: list visibility is scoped, not item-checked.
	ListByProject(ctx context.Context, identity *domain.Identity, projectID string) ([]dto.TaskResponse, error)
	// CreateOrUpdate creates a task (no id, project_id required) or sparsely
	// updates one (id present), including policy-guarded reassignment to
	// another project.
	CreateOrUpdate(ctx context.Context, identity *domain.Identity, input *dto.TaskInput) (*dto.TaskResponse, error)
	// AddComment appends a comment to a task within the caller's tenant
	AddComment(ctx context.Context, identity *domain.Identity, taskID string, req *dto.AddCommentRequest) (*domain.TaskComment, error)
}

type taskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	commentRepo repository.CommentRepository
	policy      *auth.Policy
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	commentRepo repository.CommentRepository,
	policy *auth.Policy,
) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		commentRepo: commentRepo,
		policy:      policy,
	}
}

// ListByProject retrieves a project's tasks with their comments
func (s *taskService) ListByProject(ctx context.Context, identity *domain.Identity, projectID string) ([]dto.TaskResponse, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	// Unknown project and out-of-scope project look identical to the
	// caller: an empty list.
	if project == nil {
		return []dto.TaskResponse{}, nil
	}
	if !s.policy.CanAccessTenant(identity, project.OrganizationID) {
		return []dto.TaskResponse{}, nil
	}

	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
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

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, *dto.NewTaskResponse(t, commentsByTask[t.ID]))
	}
	return responses, nil
}

// CreateOrUpdate creates or sparsely updates a task
func (s *taskService) CreateOrUpdate(ctx context.Context, identity *domain.Identity, input *dto.TaskInput) (*dto.TaskResponse, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	if input.IsUpdate() {
		return s.update(ctx, identity, input)
	}
	return s.create(ctx, identity, input)
}

func (s *taskService) create(ctx context.Context, identity *domain.Identity, input *dto.TaskInput) (*dto.TaskResponse, error) {
	if input.ProjectID == nil || *input.ProjectID == "" {
		return nil, ErrProjectIDRequired
	}

	project, err := s.projectRepo.GetByID(ctx, *input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if !s.policy.CanAccessTenant(identity, project.OrganizationID) {
		return nil, ErrUnauthorized
	}

	task := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: project.ID,
		Status:    domain.TaskStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.AssigneeEmail != nil {
		task.AssigneeEmail = *input.AssigneeEmail
	}
	if input.DueDate != nil && !input.DueDate.IsZero() {
		due := *input.DueDate
		task.DueDate = &due
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return dto.NewTaskResponse(task, nil), nil
}

func (s *taskService) update(ctx context.Context, identity *domain.Identity, input *dto.TaskInput) (*dto.TaskResponse, error) {
	task, tenantID, err := s.taskRepo.GetWithTenant(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	// The task's current tenant is policy-checked before any requested
	// field is inspected.
	if !s.policy.CanAccessTenant(identity, tenantID) {
		return nil, ErrUnauthorized
	}

	// A reassignment re-runs the policy against the target project's tenant
	// before anything is applied; rejection leaves the task unchanged.
	if input.ProjectID != nil {
		target, err := s.projectRepo.GetByID(ctx, *input.ProjectID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, ErrProjectNotFound
		}
		if !s.policy.CanAccessTenant(identity, target.OrganizationID) {
			return nil, ErrUnauthorized
		}
	}

	upd := &repository.TaskUpdate{
		ProjectID:     input.ProjectID,
		Title:         input.Title,
		Description:   input.Description,
		Status:        input.Status,
		AssigneeEmail: input.AssigneeEmail,
		DueDate:       input.DueDate,
	}
	if upd.IsEmpty() {
		// Nothing to update: succeed with the current state.
		return s.respond(ctx, task)
	}

	updated, err := s.taskRepo.Update(ctx, input.ID, upd, s.tenantGuard(identity))
	if err != nil {
		return nil, err
	}
	if !updated {
		// The guarded write matched no row: the task vanished or its
		// project moved to another tenant since the read above.
		return nil, s.staleWriteError(ctx, input.ID)
	}

	task, _, err = s.taskRepo.GetWithTenant(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return s.respond(ctx, task)
}

// AddComment appends a comment to a task within the caller's tenant
func (s *taskService) AddComment(ctx context.Context, identity *domain.Identity, taskID string, req *dto.AddCommentRequest) (*domain.TaskComment, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	task, tenantID, err := s.taskRepo.GetWithTenant(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if !s.policy.CanAccessTenant(identity, tenantID) {
		return nil, ErrUnauthorized
	}

	comment := &domain.TaskComment{
		ID:          uuid.New().String(),
		TaskID:      task.ID,
		Content:     req.Content,
		AuthorEmail: req.AuthorEmail,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *taskService) tenantGuard(identity *domain.Identity) string {
	if identity.IsOrganization() {
		return identity.OrganizationID
	}
	return ""
}

func (s *taskService) staleWriteError(ctx context.Context, id string) error {
	current, _, err := s.taskRepo.GetWithTenant(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrTaskNotFound
	}
	return ErrUnauthorized
}

func (s *taskService) respond(ctx context.Context, task *domain.Task) (*dto.TaskResponse, error) {
	comments, err := s.commentRepo.ListByTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	list := make([]domain.TaskComment, 0, len(comments))
	for _, c := range comments {
		list = append(list, *c)
	}
	return dto.NewTaskResponse(task, list), nil
}
