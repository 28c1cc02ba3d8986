package auth

import "github.com/userdesk/userdesk/internal/users"

// State classifies the credential presented with a request. The
// classification is computed fresh per request and never persisted.
type State int

const (
	// StateAnonymous means no credential was presented.
	StateAnonymous State = iota
	// StateInvalid means the credential was malformed, badly signed or
	// expired. The causes are deliberately indistinguishable.
	StateInvalid
	// StateUnknown means the credential was valid but its subject no
	// longer resolves to a user, e.g. a deleted account.
	StateUnknown
	// StateAuthenticated means the credential resolved to a user.
	StateAuthenticated
)

// Session is the per-request resolution result. User is non-nil only
// for StateAuthenticated.
type Session struct {
	State State
	User  *users.User
}
