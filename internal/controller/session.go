package controller

import "taskboard/internal/service"

// Phase is the authentication state of the client.
type Phase int

const (
	// Bootstrapping is the startup phase while the stored session is probed.
	Bootstrapping Phase = iota
	// Anonymous means no user is bound; only the auth surface is shown.
	Anonymous
	// Authenticated means a user is bound; only the board surface is shown.
	Authenticated
)

// Session owns the authentication state. It cycles between Anonymous and
// Authenticated for the life of the program; Bootstrapping occurs once.
type Session struct {
	Phase Phase
	User  *service.User
	// FormError is a form-level message from a rejected login or signup.
	FormError string
}

// NewSession returns a session in the bootstrapping phase.
func NewSession() Session {
	return Session{Phase: Bootstrapping}
}

// FinishBootstrap ends the bootstrapping phase. Any error, typically
// "not logged in", lands in Anonymous; success binds the user.
// Returns true when the probe authenticated, signalling a full hydrate.
func (s *Session) FinishBootstrap(user service.User, err error) bool {
	if err != nil {
		s.Phase = Anonymous
		s.User = nil
		return false
	}
	s.Phase = Authenticated
	s.User = &user
	return true
}

// AuthSucceeded binds the user after a successful login or signup.
func (s *Session) AuthSucceeded(user service.User) {
	s.Phase = Authenticated
	s.User = &user
	s.FormError = ""
}

// AuthFailed records the backend's rejection as a form-level error.
// The session stays Anonymous.
func (s *Session) AuthFailed(err error) {
	s.Phase = Anonymous
	s.User = nil
	s.FormError = err.Error()
}

// Reset drops the bound user and returns to Anonymous. Used for both
// user-initiated logout and forced expiry; logout is fail-safe, so this runs
// regardless of the backend call's outcome.
func (s *Session) Reset() {
	s.Phase = Anonymous
	s.User = nil
	s.FormError = ""
}

// Authenticated reports whether a user is currently bound.
func (s *Session) Authenticated() bool {
	return s.Phase == Authenticated
}
