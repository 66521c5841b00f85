// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"net/http"
	"sync"

	"taskboard/internal/backend/todoapi"
	"taskboard/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It models one account store and one session, and returns the same
// status-coded errors the real backend does.
type FakeService struct {
	mu      sync.RWMutex
	users   map[string]fakeUser
	tasks   []service.Task
	nextID  int64
	current *service.User

	// Error injection for testing
	SignupErr      error
	LoginErr       error
	CurrentUserErr error
	LogoutErr      error
	DashboardErr   error
	ListErr        error
	GetErr         error
	CreateErr      error
	UpdateErr      error
	DeleteErr      error
}

type fakeUser struct {
	user     service.User
	password string
}

// NewFakeService creates an empty FakeService with no session.
func NewFakeService() *FakeService {
	return &FakeService{users: make(map[string]fakeUser)}
}

// AddUser registers an account.
func (f *FakeService) AddUser(username, email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := int64(len(f.users) + 1)
	f.users[username] = fakeUser{
		user:     service.User{ID: id, Username: username, Email: email, Role: "USER"},
		password: password,
	}
}

// AddTask adds a task directly to the store.
func (f *FakeService) AddTask(title string, done bool) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := service.Task{ID: f.nextID, Title: title, Status: done}
	f.tasks = append(f.tasks, t)
	return t
}

// ForceLogin binds a session without credentials, for tests that start
// authenticated.
func (f *FakeService) ForceLogin(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[username]; ok {
		f.current = &u.user
	}
}

// ExpireSession drops the session server-side, so the next authenticated
// call fails with 401.
func (f *FakeService) ExpireSession() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = nil
}

func unauthorized(msg string) error {
	return &todoapi.Error{Status: http.StatusUnauthorized, Message: msg}
}

func (f *FakeService) requireAuth() error {
	if f.current == nil {
		return unauthorized("Not logged in")
	}
	return nil
}

// Signup implements service.Service.
func (f *FakeService) Signup(ctx context.Context, req service.SignupRequest) (service.User, error) {
	if f.SignupErr != nil {
		return service.User{}, f.SignupErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[req.Username]; exists {
		return service.User{}, &todoapi.Error{Status: http.StatusConflict, Message: "Username already exists"}
	}
	id := int64(len(f.users) + 1)
	u := service.User{ID: id, Username: req.Username, Email: req.Email, Role: "USER"}
	f.users[req.Username] = fakeUser{user: u, password: req.Password}
	f.current = &u
	return u, nil
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, creds service.Credentials) (service.User, error) {
	if f.LoginErr != nil {
		return service.User{}, f.LoginErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[creds.Username]
	if !ok || u.password != creds.Password {
		return service.User{}, unauthorized("Invalid credentials")
	}
	f.current = &u.user
	return u.user, nil
}

// CurrentUser implements service.Service.
func (f *FakeService) CurrentUser(ctx context.Context) (service.User, error) {
	if f.CurrentUserErr != nil {
		return service.User{}, f.CurrentUserErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current == nil {
		return service.User{}, unauthorized("Not logged in")
	}
	return *f.current, nil
}

// Logout implements service.Service.
func (f *FakeService) Logout(ctx context.Context) error {
	if f.LogoutErr != nil {
		return f.LogoutErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = nil
	return nil
}

// Dashboard implements service.Service.
func (f *FakeService) Dashboard(ctx context.Context) (service.Dashboard, error) {
	if f.DashboardErr != nil {
		return service.Dashboard{}, f.DashboardErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if err := f.requireAuth(); err != nil {
		return service.Dashboard{}, err
	}
	var done int64
	for _, t := range f.tasks {
		if t.Status {
			done++
		}
	}
	total := int64(len(f.tasks))
	return service.Dashboard{
		Username:       f.current.Username,
		Role:           f.current.Role,
		TotalTasks:     total,
		OpenTasks:      total - done,
		CompletedTasks: done,
	}, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if err := f.requireAuth(); err != nil {
		return nil, err
	}
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// ListTasksByStatus implements service.Service.
func (f *FakeService) ListTasksByStatus(ctx context.Context, doneStatus bool) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if err := f.requireAuth(); err != nil {
		return nil, err
	}
	var result []service.Task
	for _, t := range f.tasks {
		if t.Status == doneStatus {
			result = append(result, t)
		}
	}
	return result, nil
}

// TaskByID implements service.Service.
func (f *FakeService) TaskByID(ctx context.Context, id int64) (service.Task, error) {
	if f.GetErr != nil {
		return service.Task{}, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if err := f.requireAuth(); err != nil {
		return service.Task{}, err
	}
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, &todoapi.Error{Status: http.StatusNotFound, Message: "Todo not found"}
}

// TaskByTitle implements service.Service.
func (f *FakeService) TaskByTitle(ctx context.Context, title string) (service.Task, error) {
	if f.GetErr != nil {
		return service.Task{}, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if err := f.requireAuth(); err != nil {
		return service.Task{}, err
	}
	for _, t := range f.tasks {
		if t.Title == title {
			return t, nil
		}
	}
	return service.Task{}, &todoapi.Error{Status: http.StatusNotFound, Message: "Todo not found"}
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string, done bool) (service.Task, error) {
	if f.CreateErr != nil {
		return service.Task{}, f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAuth(); err != nil {
		return service.Task{}, err
	}
	f.nextID++
	t := service.Task{ID: f.nextID, Title: title, Status: done}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int64, title string, done bool) (service.Task, error) {
	if f.UpdateErr != nil {
		return service.Task{}, f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAuth(); err != nil {
		return service.Task{}, err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Title = title
			f.tasks[i].Status = done
			return f.tasks[i], nil
		}
	}
	return service.Task{}, &todoapi.Error{Status: http.StatusNotFound, Message: "Todo not found"}
}

// UpdateTaskByTitle implements service.Service.
func (f *FakeService) UpdateTaskByTitle(ctx context.Context, title, newTitle string, done bool) (service.Task, error) {
	if f.UpdateErr != nil {
		return service.Task{}, f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAuth(); err != nil {
		return service.Task{}, err
	}
	for i, t := range f.tasks {
		if t.Title == title {
			f.tasks[i].Title = newTitle
			f.tasks[i].Status = done
			return f.tasks[i], nil
		}
	}
	return service.Task{}, &todoapi.Error{Status: http.StatusNotFound, Message: "Todo not found"}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAuth(); err != nil {
		return err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &todoapi.Error{Status: http.StatusNotFound, Message: "Todo not found"}
}

// DeleteTaskByTitle implements service.Service.
func (f *FakeService) DeleteTaskByTitle(ctx context.Context, title string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAuth(); err != nil {
		return err
	}
	for i, t := range f.tasks {
		if t.Title == title {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &todoapi.Error{Status: http.StatusNotFound, Message: "Todo not found"}
}
