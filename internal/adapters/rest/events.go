package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ircportal/internal/domain"
	"ircportal/internal/ports/input"
)

func (s *server) listEvents(c *gin.Context) {
	ctx := c.Request.Context()
	if p := c.Query("portfolio"); p != "" {
		events, err := s.Events.GetEventsByPortfolio(ctx, domain.Portfolio(p))
		s.respond(c, http.StatusOK, events, err)
		return
	}
	events, err := s.Events.ListEvents(ctx)
	s.respond(c, http.StatusOK, events, err)
}

func (s *server) createEvent(c *gin.Context) {
	var in input.CreateEventInput
	if !s.bind(c, &in) {
		return
	}
	event, err := s.Events.CreateEvent(c.Request.Context(), currentUser(c), in)
	s.respond(c, http.StatusCreated, event, err)
}

func (s *server) getEvent(c *gin.Context) {
	event, err := s.Events.GetEvent(c.Request.Context(), c.Param("id"))
	s.respond(c, http.StatusOK, event, err)
}

func (s *server) updateEvent(c *gin.Context) {
	var patch input.EventPatch
	if !s.bind(c, &patch) {
		return
	}
	event, err := s.Events.UpdateEvent(c.Request.Context(), c.Param("id"), patch)
	s.respond(c, http.StatusOK, event, err)
}

func (s *server) deleteEvent(c *gin.Context) {
	err := s.Events.DeleteEvent(c.Request.Context(), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}

func (s *server) canMarkReady(c *gin.Context) {
	ready := s.Events.CanMarkReady(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"canMarkReady": ready})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *server) updateEventStatus(c *gin.Context) {
	var req statusRequest
	if !s.bind(c, &req) {
		return
	}
	event, err := s.Events.UpdateEventStatus(c.Request.Context(), currentUser(c), c.Param("id"), domain.EventStatus(req.Status))
	s.respond(c, http.StatusOK, event, err)
}

type commentRequest struct {
	Comment string `json:"comment"`
}

func (s *server) updateExternalsComment(c *gin.Context) {
	var req commentRequest
	if !s.bind(c, &req) {
		return
	}
	event, err := s.Events.UpdateExternalsComment(c.Request.Context(), c.Param("id"), req.Comment)
	s.respond(c, http.StatusOK, event, err)
}

type checklistItemRequest struct {
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

func (s *server) addChecklistItem(c *gin.Context) {
	var req checklistItemRequest
	if !s.bind(c, &req) {
		return
	}
	event, err := s.Events.AddChecklistItem(c.Request.Context(), c.Param("id"), req.Label, req.Required)
	s.respond(c, http.StatusCreated, event, err)
}

type checklistToggleRequest struct {
	Completed bool `json:"completed"`
}

func (s *server) updateChecklistItem(c *gin.Context) {
	var req checklistToggleRequest
	if !s.bind(c, &req) {
		return
	}
	event, err := s.Events.UpdateChecklistItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), req.Completed)
	s.respond(c, http.StatusOK, event, err)
}

func (s *server) marketingRequests(c *gin.Context) {
	events, err := s.Events.GetMarketingRequests(c.Request.Context())
	s.respond(c, http.StatusOK, events, err)
}

func (s *server) budgetRequests(c *gin.Context) {
	events, err := s.Events.GetBudgetRequests(c.Request.Context())
	s.respond(c, http.StatusOK, events, err)
}

func (s *server) externalsRequests(c *gin.Context) {
	events, err := s.Events.GetExternalsRequests(c.Request.Context())
	s.respond(c, http.StatusOK, events, err)
}

func (s *server) externalsTasks(c *gin.Context) {
	tasks, err := s.Events.GetExternalsTasks(c.Request.Context())
	s.respond(c, http.StatusOK, tasks, err)
}

func (s *server) pendingApprovals(c *gin.Context) {
	events, err := s.Events.GetPendingApprovals(c.Request.Context())
	s.respond(c, http.StatusOK, events, err)
}

func (s *server) approvedEvents(c *gin.Context) {
	events, err := s.Events.GetApprovedEvents(c.Request.Context())
	s.respond(c, http.StatusOK, events, err)
}

func (s *server) listSocials(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("upcoming") == "true" {
		socials, err := s.Socials.GetUpcomingSocials(ctx)
		s.respond(c, http.StatusOK, socials, err)
		return
	}
	socials, err := s.Socials.ListSocialEvents(ctx)
	s.respond(c, http.StatusOK, socials, err)
}

func (s *server) createSocial(c *gin.Context) {
	var in input.CreateSocialEventInput
	if !s.bind(c, &in) {
		return
	}
	social, err := s.Socials.CreateSocialEvent(c.Request.Context(), currentUser(c), in)
	s.respond(c, http.StatusCreated, social, err)
}

func (s *server) deleteSocial(c *gin.Context) {
	err := s.Socials.DeleteSocialEvent(c.Request.Context(), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}
