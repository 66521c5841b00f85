// Package service defines the backend-agnostic interface for tracker operations.
package service

// Task represents a single task item. Status is false while the task is open
// and true once it is done.
type Task struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status bool   `json:"status"`
}

// User is the authenticated identity returned by the auth endpoints.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Dashboard is the server-computed aggregate for the current user's tasks.
type Dashboard struct {
	Username       string `json:"username"`
	Role           string `json:"role"`
	TotalTasks     int64  `json:"totalTasks"`
	OpenTasks      int64  `json:"openTasks"`
	CompletedTasks int64  `json:"completedTasks"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the account-creation payload.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StatusLabel renders a task status the way the board displays it.
func StatusLabel(done bool) string {
	if done {
		return "Done"
	}
	return "Open"
}
