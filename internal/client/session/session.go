// Package session carries the per-run authentication state: the mode chosen
// at startup and the cached current user.
package session

import "github.com/ohJeez/e-commerece-website/internal/core/domain"

// Mode is the fixed choice, per session, of whether persistence and
// authentication route through the remote service or the on-device store.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

// Session is initialised once at startup with the detected mode and is
// mutated only through login/logout/resolve transitions. All access happens
// on the single user-driven execution path, so there is no locking.
type Session struct {
	mode Mode
	user *domain.User
}

func New(mode Mode) *Session {
	return &Session{mode: mode}
}

// Mode never changes after construction; transient remote failures surface
// as operation errors, not as a fallback to local mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// User returns the cached identity, or nil when nobody is logged in or the
// session has not been resolved yet.
func (s *Session) User() *domain.User {
	return s.user
}

func (s *Session) SetUser(u *domain.User) {
	s.user = u
}

func (s *Session) Clear() {
	s.user = nil
}
