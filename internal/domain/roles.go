package domain

// Role is a member's position in the club.
type Role string

const (
	RoleCoPresident Role = "co-president"
	RoleVP          Role = "vp"
	RoleTeamMember  Role = "team-member"
	RoleVolunteer   Role = "volunteer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCoPresident, RoleVP, RoleTeamMember, RoleVolunteer:
		return true
	}
	return false
}

// Portfolio is one of the seven organisational sub-units.
type Portfolio string

const (
	PortfolioCharity   Portfolio = "charity"
	PortfolioEvents    Portfolio = "events"
	PortfolioFinance   Portfolio = "finance"
	PortfolioMarketing Portfolio = "marketing"
	PortfolioInternals Portfolio = "internals"
	PortfolioAdvocacy  Portfolio = "advocacy"
	PortfolioExternals Portfolio = "externals"
)

// Portfolios lists every portfolio in display order.
var Portfolios = []Portfolio{
	PortfolioCharity,
	PortfolioEvents,
	PortfolioFinance,
	PortfolioMarketing,
	PortfolioInternals,
	PortfolioAdvocacy,
	PortfolioExternals,
}

func (p Portfolio) IsValid() bool {
	for _, known := range Portfolios {
		if p == known {
			return true
		}
	}
	return false
}

// Creator portfolios run events that go through co-president approval.
var creatorPortfolios = map[Portfolio]bool{
	PortfolioCharity:  true,
	PortfolioEvents:   true,
	PortfolioAdvocacy: true,
}

// IsCreator reports whether events of p are subject to the approval hub.
func (p Portfolio) IsCreator() bool {
	return creatorPortfolios[p]
}

// Shared portfolios appear on the club-wide calendar.
var sharedPortfolios = map[Portfolio]bool{
	PortfolioMarketing: true,
	PortfolioCharity:   true,
	PortfolioEvents:    true,
	PortfolioInternals: true,
}

// IsShared reports whether calendar entries of p show on the shared calendar.
func (p Portfolio) IsShared() bool {
	return sharedPortfolios[p]
}

// RequestsBudget reports whether events of p are routed to finance as budget requests.
func (p Portfolio) RequestsBudget() bool {
	return p == PortfolioEvents || p == PortfolioCharity
}
