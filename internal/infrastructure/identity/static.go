// Package identity holds the identity providers the portal can sign in
// against.
package identity

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ircportal/internal/domain"
	"ircportal/internal/ports/output"
)

var _ output.IdentityProvider = (*StaticProvider)(nil)

// Account is a seeded login. Roles use the provider claim names.
type Account struct {
	ID       string
	Email    string
	FullName string
	Roles    []string
}

// DefaultAccounts are the demo logins of the club executive.
var DefaultAccounts = []Account{
	{ID: "u-president", Email: "president@irc.ca", FullName: "Sarah Khan", Roles: []string{"co_president"}},
	{ID: "u-vp-events", Email: "vp-events@irc.ca", FullName: "Sarah Ahmed", Roles: []string{"vp_events"}},
	{ID: "u-vp-finance", Email: "vp-finance@irc.ca", FullName: "Finance VP", Roles: []string{"vp_finance"}},
	{ID: "u-vp-internals", Email: "vp-internals@irc.ca", FullName: "Internals VP", Roles: []string{"vp_internals"}},
	{ID: "u-member", Email: "member@irc.ca", FullName: "Amir Khan", Roles: []string{"exec_marketing"}},
	{ID: "u-volunteer", Email: "volunteer@irc.ca", FullName: "Yusuf Omar", Roles: []string{"volunteer"}},
}

// StaticProvider signs in a fixed set of accounts sharing one password.
type StaticProvider struct {
	accounts map[string]Account
	hash     []byte
}

// NewStaticProvider hashes password once; every account accepts it.
func NewStaticProvider(accounts []Account, password string) (*StaticProvider, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	byEmail := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byEmail[strings.ToLower(a.Email)] = a
	}
	return &StaticProvider{accounts: byEmail, hash: hash}, nil
}

func (p *StaticProvider) SignIn(_ context.Context, email, password string) (*output.Identity, error) {
	account, ok := p.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &output.Identity{
		ID:       account.ID,
		Email:    account.Email,
		FullName: account.FullName,
		Roles:    append([]string(nil), account.Roles...),
	}, nil
}

// Accounts lists the accounts by email.
func (p *StaticProvider) Accounts() []Account {
	out := make([]Account, 0, len(p.accounts))
	for _, a := range p.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}
