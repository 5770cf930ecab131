package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ircportal/internal/ports/input"
)

func (s *server) listMinutes(c *gin.Context) {
	list, err := s.Minutes.ListMinutes(c.Request.Context(), currentUser(c))
	s.respond(c, http.StatusOK, list, err)
}

func (s *server) addMinute(c *gin.Context) {
	var in input.MeetingMinuteInput
	if !s.bind(c, &in) {
		return
	}
	minute, err := s.Minutes.AddMinute(c.Request.Context(), currentUser(c), in)
	s.respond(c, http.StatusCreated, minute, err)
}

func (s *server) deleteMinute(c *gin.Context) {
	err := s.Minutes.DeleteMinute(c.Request.Context(), currentUser(c), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}
