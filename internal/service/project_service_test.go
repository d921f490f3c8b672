package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/auth"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/dto"
)

func newTestProjectService(projects *fakeProjectRepo, tasks *fakeTaskRepo, comments *fakeCommentRepo) ProjectService {
	return NewProjectService(projects, tasks, comments, auth.NewPolicy())
}

func TestProjectServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("organization sees only its own projects", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		got, err := svc.List(ctx, orgA)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 project, got %d", len(got))
		}
		if got[0].ID != "project-a" {
			t.Errorf("expected project-a, got %s", got[0].ID)
		}
	})

	t.Run("super admin sees every tenant", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		got, err := svc.List(ctx, superAdmin)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 projects, got %d", len(got))
		}
	})

	t.Run("task counts are computed from the loaded tasks", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		tasks.Create(ctx, &domain.Task{ID: "task-a2", ProjectID: "project-a", Title: "Second", Status: domain.TaskStatusDone})
		svc := newTestProjectService(projects, tasks, comments)

		got, err := svc.List(ctx, orgA)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if got[0].TaskCount != 2 {
			t.Errorf("expected task_count 2, got %d", got[0].TaskCount)
		}
		if got[0].CompletedTasks != 1 {
			t.Errorf("expected completed_tasks 1, got %d", got[0].CompletedTasks)
		}
		if len(got[0].Tasks) != 2 {
			t.Errorf("expected 2 embedded tasks, got %d", len(got[0].Tasks))
		}
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		if _, err := svc.List(ctx, nil); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestProjectServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("tenant is forced from the identity", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		got, err := svc.CreateOrUpdate(ctx, orgA, &dto.ProjectInput{Name: strPtr("Gamma")})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if got.OrganizationID != "org-a" {
			t.Errorf("expected owner org-a, got %s", got.OrganizationID)
		}
		if got.Status != domain.ProjectStatusActive {
			t.Errorf("expected default status %s, got %s", domain.ProjectStatusActive, got.Status)
		}
	})

	t.Run("name required", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		if _, err := svc.CreateOrUpdate(ctx, orgA, &dto.ProjectInput{}); !errors.Is(err, ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("super admin may not create projects", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		_, err := svc.CreateOrUpdate(ctx, superAdmin, &dto.ProjectInput{Name: strPtr("Nobody's")})
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestProjectServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update touches only named fields", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		got, err := svc.CreateOrUpdate(ctx, orgA, &dto.ProjectInput{
			ID:     "project-a",
			Status: strPtr(domain.ProjectStatusDone),
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Status != domain.ProjectStatusDone {
			t.Errorf("expected status %s, got %s", domain.ProjectStatusDone, got.Status)
		}
		if got.Name != "Alpha" {
			t.Errorf("name must be untouched, got %q", got.Name)
		}
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		got, err := svc.CreateOrUpdate(ctx, orgA, &dto.ProjectInput{ID: "project-a"})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Name != "Alpha" || got.Status != domain.ProjectStatusActive {
			t.Errorf("no-op update must return the current state, got %+v", got)
		}
	})

	t.Run("explicitly empty description is applied", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		projects.projects["project-a"].Description = "old notes"
		svc := newTestProjectService(projects, tasks, comments)

		got, err := svc.CreateOrUpdate(ctx, orgA, &dto.ProjectInput{
			ID:          "project-a",
			Description: strPtr(""),
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Description != "" {
			t.Errorf("expected description cleared, got %q", got.Description)
		}
	})

	t.Run("cross-tenant update denied and row unchanged", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		_, err := svc.CreateOrUpdate(ctx, orgB, &dto.ProjectInput{
			ID:   "project-a",
			Name: strPtr("hijacked"),
		})
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		p, _ := projects.GetByID(ctx, "project-a")
		if p.Name != "Alpha" {
			t.Errorf("project must be unchanged after denied update, got name %q", p.Name)
		}
	})

	t.Run("super admin may update any tenant's project", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		got, err := svc.CreateOrUpdate(ctx, superAdmin, &dto.ProjectInput{
			ID:   "project-b",
			Name: strPtr("Beta Renamed"),
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Name != "Beta Renamed" {
			t.Errorf("expected renamed project, got %q", got.Name)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		_, err := svc.CreateOrUpdate(ctx, orgA, &dto.ProjectInput{ID: "ghost", Name: strPtr("x")})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Errorf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectServiceStats(t *testing.T) {
	ctx := context.Background()

	t.Run("counts and rates per project", func(t *testing.T) {
		projects := newFakeProjectRepo(
			&domain.Project{ID: "project-1", OrganizationID: "org-a", Name: "One", CreatedAt: time.Now().UTC()},
			&domain.Project{ID: "project-2", OrganizationID: "org-a", Name: "Two", CreatedAt: time.Now().UTC()},
			&domain.Project{ID: "project-x", OrganizationID: "org-b", Name: "Other", CreatedAt: time.Now().UTC()},
		)
		tasks := newFakeTaskRepo(projects,
			&domain.Task{ID: "t1", ProjectID: "project-1", Status: domain.TaskStatusDone},
			&domain.Task{ID: "t2", ProjectID: "project-1", Status: domain.TaskStatusActive},
			&domain.Task{ID: "t3", ProjectID: "project-1", Status: domain.TaskStatusActive},
			&domain.Task{ID: "tx", ProjectID: "project-x", Status: domain.TaskStatusDone},
		)
		projects.tasks = tasks
		svc := newTestProjectService(projects, tasks, newFakeCommentRepo())

		got, err := svc.Stats(ctx, orgA)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected stats for 2 projects, got %d", len(got))
		}

		byID := make(map[string]domain.ProjectStats, len(got))
		for _, s := range got {
			byID[s.ProjectID] = s
		}

		one := byID["project-1"]
		if one.TaskCount != 3 || one.CompletedTasks != 1 {
			t.Errorf("project-1 counts = (%d, %d), want (3, 1)", one.TaskCount, one.CompletedTasks)
		}
		if one.CompletionRate < 0.333 || one.CompletionRate > 0.334 {
			t.Errorf("project-1 rate = %f, want 1/3", one.CompletionRate)
		}

		two := byID["project-2"]
		if two.TaskCount != 0 || two.CompletedTasks != 0 {
			t.Errorf("project-2 counts = (%d, %d), want (0, 0)", two.TaskCount, two.CompletedTasks)
		}
		if two.CompletionRate != 0 {
			t.Errorf("a project with no tasks must report rate 0, got %f", two.CompletionRate)
		}

		if _, leaked := byID["project-x"]; leaked {
			t.Error("stats must not include another tenant's projects")
		}
	})

	t.Run("super admin denied", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		if _, err := svc.Stats(ctx, superAdmin); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		projects, tasks, comments := twoTenantFixture()
		svc := newTestProjectService(projects, tasks, comments)

		if _, err := svc.Stats(ctx, nil); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}
