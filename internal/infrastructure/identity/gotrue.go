package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"ircportal/internal/domain"
	"ircportal/internal/ports/output"
)

var _ output.IdentityProvider = (*GoTrueProvider)(nil)

// GoTrueProvider signs in against a GoTrue-style identity service with the
// OAuth2 password grant and reads the account from the returned access token.
type GoTrueProvider struct {
	oauth  *oauth2.Config
	secret []byte
}

// goTrueClaims is the access-token payload GoTrue issues.
type goTrueClaims struct {
	Email       string `json:"email"`
	AppMetadata struct {
		Roles []string `json:"roles"`
	} `json:"app_metadata"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// NewGoTrueProvider targets baseURL (for example https://site/.netlify/identity).
// secret verifies the HS256 access tokens.
func NewGoTrueProvider(baseURL, clientID string, secret []byte) *GoTrueProvider {
	return &GoTrueProvider{
		oauth: &oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{
				TokenURL:  strings.TrimRight(baseURL, "/") + "/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		secret: secret,
	}
}

func (p *GoTrueProvider) SignIn(ctx context.Context, email, password string) (*output.Identity, error) {
	token, err := p.oauth.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil && rerr.Response.StatusCode < 500 {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("request token: %w", err)
	}

	claims := &goTrueClaims{}
	_, err = jwt.ParseWithClaims(token.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	return &output.Identity{
		ID:       claims.Subject,
		Email:    claims.Email,
		FullName: claims.UserMetadata.FullName,
		Roles:    claims.AppMetadata.Roles,
	}, nil
}
