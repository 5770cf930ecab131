package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/input"
	"ircportal/internal/ports/output"
)

var _ input.IdentityUseCase = (*IdentityService)(nil)

// IdentityService resolves credentials into a User and keeps the signed-in
// user in the session store.
type IdentityService struct {
	provider output.IdentityProvider
	sessions output.SessionStore
}

func NewIdentityService(provider output.IdentityProvider, sessions output.SessionStore) *IdentityService {
	return &IdentityService{provider: provider, sessions: sessions}
}

// Authenticate verifies the credentials without touching the session.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	identity, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return UserFromClaims(identity.ID, identity.Email, identity.FullName, identity.Roles), nil
}

func (s *IdentityService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.sessions.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return user, nil
}

func (s *IdentityService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser restores the stored user. A missing session yields (nil, nil);
// an unreadable one is cleared and treated as logged out.
func (s *IdentityService) CurrentUser(ctx context.Context) (*entities.User, error) {
	data, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var user entities.User
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" || !user.Role.IsValid() {
		logrus.WithField("key", output.SessionKey).Warn("discarding unreadable session")
		if err := s.sessions.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return nil, nil
	}
	return &user, nil
}

// UserFromClaims maps provider role claims onto a User. co_president wins
// over everything; vp_<portfolio> makes a VP; volunteer makes a volunteer;
// anyone else is a team member. The portfolio comes from vp_<p>, then
// exec_<p>. The name falls back to the email.
func UserFromClaims(id, email, name string, roles []string) *entities.User {
	user := &entities.User{ID: id, Email: email, Name: name, Role: domain.RoleTeamMember}
	if user.Name == "" {
		user.Name = email
	}

	var vp, exec domain.Portfolio
	coPresident, volunteer := false, false
	for _, role := range roles {
		switch {
		case role == "co_president":
			coPresident = true
		case role == "volunteer":
			volunteer = true
		case strings.HasPrefix(role, "vp_"):
			if p := domain.Portfolio(strings.TrimPrefix(role, "vp_")); p.IsValid() && vp == "" {
				vp = p
			}
		case strings.HasPrefix(role, "exec_"):
			if p := domain.Portfolio(strings.TrimPrefix(role, "exec_")); p.IsValid() && exec == "" {
				exec = p
			}
		}
	}

	switch {
	case coPresident:
		user.Role = domain.RoleCoPresident
		return user
	case vp != "":
		user.Role = domain.RoleVP
	case volunteer:
		user.Role = domain.RoleVolunteer
	}
	user.Portfolio = vp
	if user.Portfolio == "" {
		user.Portfolio = exec
	}
	return user
}
