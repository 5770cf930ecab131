package output

import "context"

// Identity is what an identity provider knows about a signed-in account.
// Roles are raw claims such as "co_president", "vp_events" or "exec_marketing".
type Identity struct {
	ID       string
	Email    string
	FullName string
	Roles    []string
}

// IdentityProvider verifies credentials. Implementations return
// domain.ErrInvalidCredentials when the email/password pair is rejected.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
}

// SessionKey is the fixed key the signed-in user is stored under.
const SessionKey = "portal_user"

// SessionStore keeps one serialized session record. Load returns (nil, nil)
// when nothing is stored.
type SessionStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}
