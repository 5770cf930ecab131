package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *server) listNotifications(c *gin.Context) {
	list, err := s.Notifications.ListNotifications(c.Request.Context())
	s.respond(c, http.StatusOK, list, err)
}

func (s *server) unreadCount(c *gin.Context) {
	n, err := s.Notifications.UnreadCount(c.Request.Context())
	s.respond(c, http.StatusOK, gin.H{"unread": n}, err)
}

func (s *server) markAllRead(c *gin.Context) {
	err := s.Notifications.MarkAllAsRead(c.Request.Context())
	s.respond(c, http.StatusNoContent, nil, err)
}

func (s *server) markRead(c *gin.Context) {
	err := s.Notifications.MarkAsRead(c.Request.Context(), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}

func (s *server) clearNotification(c *gin.Context) {
	err := s.Notifications.ClearNotification(c.Request.Context(), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}
