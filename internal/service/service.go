// Package service defines the backend-agnostic interface for tracker operations.
package service

import "context"

// Service defines the interface for tracker backend operations.
// All HTTP calls go through this interface; the controllers and commands
// never touch the wire format directly.
type Service interface {
	// Signup creates an account and starts a session for it.
	Signup(ctx context.Context, req SignupRequest) (User, error)

	// Login authenticates and starts a session.
	Login(ctx context.Context, creds Credentials) (User, error)

	// CurrentUser returns the identity bound to the stored session.
	// Fails when no session exists or the session has expired.
	CurrentUser(ctx context.Context) (User, error)

	// Logout ends the session on the server.
	Logout(ctx context.Context) error

	// Dashboard returns the aggregate counts for the current user.
	Dashboard(ctx context.Context) (Dashboard, error)

	// ListTasks returns every task for the current user, in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// ListTasksByStatus returns the subset with the given status.
	ListTasksByStatus(ctx context.Context, done bool) ([]Task, error)

	// TaskByID fetches a single task by ID.
	TaskByID(ctx context.Context, id int64) (Task, error)

	// TaskByTitle fetches a single task by exact title.
	TaskByTitle(ctx context.Context, title string) (Task, error)

	// CreateTask creates a new task.
	CreateTask(ctx context.Context, title string, done bool) (Task, error)

	// UpdateTask replaces the title and status of the task with the given ID.
	UpdateTask(ctx context.Context, id int64, title string, done bool) (Task, error)

	// UpdateTaskByTitle replaces the title and status of the task found by title.
	UpdateTaskByTitle(ctx context.Context, title, newTitle string, done bool) (Task, error)

	// DeleteTask removes a task by ID.
	DeleteTask(ctx context.Context, id int64) error

	// DeleteTaskByTitle removes a task by exact title.
	DeleteTaskByTitle(ctx context.Context, title string) error
}
