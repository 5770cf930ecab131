package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ircportal/internal/domain"
	"ircportal/internal/ports/input"
	"ircportal/pkg/tz"
)

func (s *server) listCalendar(c *gin.Context) {
	ctx := c.Request.Context()
	switch {
	case c.Query("portfolio") != "":
		entries, err := s.Calendar.EntriesByPortfolio(ctx, domain.Portfolio(c.Query("portfolio")))
		s.respond(c, http.StatusOK, entries, err)
	case c.Query("date") != "":
		entries, err := s.Calendar.EntriesByDate(ctx, c.Query("date"))
		s.respond(c, http.StatusOK, entries, err)
	default:
		entries, err := s.Calendar.SharedEntries(ctx)
		s.respond(c, http.StatusOK, entries, err)
	}
}

func (s *server) addCalendarEntry(c *gin.Context) {
	var in input.CalendarEntryInput
	if !s.bind(c, &in) {
		return
	}
	entry, err := s.Calendar.AddEntry(c.Request.Context(), currentUser(c), in)
	s.respond(c, http.StatusCreated, entry, err)
}

func (s *server) updateCalendarEntry(c *gin.Context) {
	var patch input.CalendarEntryPatch
	if !s.bind(c, &patch) {
		return
	}
	entry, err := s.Calendar.UpdateEntry(c.Request.Context(), currentUser(c), c.Param("id"), patch)
	s.respond(c, http.StatusOK, entry, err)
}

func (s *server) deleteCalendarEntry(c *gin.Context) {
	err := s.Calendar.DeleteEntry(c.Request.Context(), currentUser(c), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}

func (s *server) portfolioView(c *gin.Context) {
	entries, err := s.Calendar.PortfolioView(c.Request.Context(), domain.Portfolio(c.Param("portfolio")), s.dateParam(c))
	s.respond(c, http.StatusOK, entries, err)
}

func (s *server) sharedView(c *gin.Context) {
	entries, err := s.Calendar.SharedView(c.Request.Context(), s.dateParam(c))
	s.respond(c, http.StatusOK, entries, err)
}

func (s *server) dashboardView(c *gin.Context) {
	entries, err := s.Calendar.DashboardView(c.Request.Context(), s.dateParam(c))
	s.respond(c, http.StatusOK, entries, err)
}

// dateParam is the ?date= parameter, defaulting to today in the club zone.
func (s *server) dateParam(c *gin.Context) string {
	if d := c.Query("date"); d != "" {
		return d
	}
	return tz.Date(s.now(), s.loc)
}
