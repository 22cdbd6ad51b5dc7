package ui

import "regexp"

// Form validation runs before any data access call; a failed check reaches
// the notifier, never the store.

var emailShape = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

const minPasswordLen = 6

func validEmail(email string) bool {
	return emailShape.MatchString(email)
}
