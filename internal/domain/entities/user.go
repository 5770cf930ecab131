package entities

import "ircportal/internal/domain"

// User is the member resolved at login. It is immutable for the session.
type User struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	Role      domain.Role      `json:"role"`
	Portfolio domain.Portfolio `json:"portfolio,omitempty"`
}

func (u *User) IsCoPresident() bool {
	return u != nil && u.Role == domain.RoleCoPresident
}

// Manages reports whether u may edit records of portfolio p.
func (u *User) Manages(p domain.Portfolio) bool {
	if u == nil {
		return false
	}
	if u.Role == domain.RoleCoPresident {
		return true
	}
	return (u.Role == domain.RoleVP || u.Role == domain.RoleTeamMember) && u.Portfolio == p
}
