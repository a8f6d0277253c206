package main

import (
	"context"
	"errors"
	"log"

	"github.com/taskora/taskora-api/internal/config"
	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/repository"
	"github.com/taskora/taskora-api/internal/repository/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the admin and demo accounts plus a demo project with a few tasks so
// a fresh install has something to click on. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	ctx := context.Background()

	admin, err := ensureUser(ctx, repos.User, "admin@taskora.com", "Admin User", "password", domain.RoleAdmin)
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	log.Printf("admin user ensured with id %d", admin.ID)

	demo, err := ensureUser(ctx, repos.User, "demo@taskora.com", "Demo User", "password123", domain.RoleUser)
	if err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}
	log.Printf("demo user ensured with id %d", demo.ID)

	if err := ensureDemoProject(ctx, repos, demo); err != nil {
		log.Fatalf("failed to seed demo project: %v", err)
	}

	log.Println("seeding finished")
}

func ensureUser(ctx context.Context, users repository.UserRepository, email, name, password string, role domain.Role) (*domain.User, error) {
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func ensureDemoProject(ctx context.Context, repos *repository.Repositories, owner *domain.User) error {
	existing, err := repos.Project.ListByOwner(ctx, owner.ID)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p.Name == "Demo Project" {
			log.Println("demo project already exists")
			return nil
		}
	}

	project := &domain.Project{
		Name:        "Demo Project",
		Description: "A project to try out Taskora's features.",
		Status:      domain.ProjectStatusActive,
		OwnerID:     owner.ID,
	}
	if err := repos.Project.Create(ctx, project); err != nil {
		return err
	}

	titles := []struct {
		title  string
		status domain.TaskStatus
	}{
		{"Explore the Kanban board", domain.TaskStatusPending},
		{"Try the Pomodoro timer", domain.TaskStatusInProgress},
		{"Create a new task", domain.TaskStatusPending},
	}
	for _, t := range titles {
		task := &domain.Task{
			Title:      t.title,
			Status:     t.status,
			Priority:   domain.TaskPriorityMedium,
			ProjectID:  project.ID,
			AssigneeID: owner.ID,
		}
		if err := repos.Task.Create(ctx, task); err != nil {
			return err
		}
	}

	log.Printf("created demo project with id %d", project.ID)
	return nil
}
