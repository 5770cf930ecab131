// Package rest exposes the portal use cases over HTTP with gin.
package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ircportal/internal/ports/input"
	"ircportal/internal/ports/output"
)

// Services are the use cases the router dispatches to.
type Services struct {
	Identity       input.IdentityUseCase
	Events         input.EventUseCase
	Socials        input.SocialUseCase
	Tasks          input.TaskUseCase
	Calendar       input.CalendarUseCase
	Fundraising    input.FundraisingUseCase
	Reimbursements input.ReimbursementUseCase
	Notifications  input.NotificationUseCase
	Minutes        input.MinutesUseCase
}

type Options struct {
	Tokens         *TokenIssuer
	Translator     output.Translator
	DefaultLocale  string
	AllowedOrigins []string
	// Location decides "today" for calendar views without a date.
	Location *time.Location
}

type server struct {
	Services
	tokens     *TokenIssuer
	translator output.Translator
	locale     string
	loc        *time.Location
	now        func() time.Time
}

// NewRouter wires every route under /api. Everything except login and the
// health check needs a bearer token.
func NewRouter(svcs Services, opts Options) *gin.Engine {
	s := &server{
		Services:   svcs,
		tokens:     opts.Tokens,
		translator: opts.Translator,
		locale:     opts.DefaultLocale,
		loc:        opts.Location,
		now:        time.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "time": time.Now().Format(time.RFC3339)})
	})

	api := router.Group("/api")
	api.POST("/auth/login", s.login)

	protected := api.Group("/")
	protected.Use(s.requireUser())
	{
		protected.GET("/auth/me", s.me)

		protected.GET("/events", s.listEvents)
		protected.POST("/events", s.createEvent)
		protected.GET("/events/:id", s.getEvent)
		protected.PATCH("/events/:id", s.updateEvent)
		protected.DELETE("/events/:id", s.deleteEvent)
		protected.GET("/events/:id/ready", s.canMarkReady)
		protected.PUT("/events/:id/status", s.updateEventStatus)
		protected.PUT("/events/:id/externals-comment", s.updateExternalsComment)
		protected.POST("/events/:id/checklist", s.addChecklistItem)
		protected.PATCH("/events/:id/checklist/:itemId", s.updateChecklistItem)

		protected.GET("/requests/marketing", s.marketingRequests)
		protected.GET("/requests/budget", s.budgetRequests)
		protected.GET("/requests/externals", s.externalsRequests)
		protected.GET("/externals/tasks", s.externalsTasks)
		protected.GET("/approvals/pending", s.pendingApprovals)
		protected.GET("/approvals/approved", s.approvedEvents)

		protected.GET("/socials", s.listSocials)
		protected.POST("/socials", s.createSocial)
		protected.DELETE("/socials/:id", s.deleteSocial)

		protected.GET("/tasks", s.listTasks)
		protected.POST("/tasks", s.createTask)
		protected.GET("/tasks/:id", s.getTask)
		protected.PATCH("/tasks/:id", s.updateTask)
		protected.DELETE("/tasks/:id", s.deleteTask)
		protected.PUT("/tasks/:id/status", s.updateTaskStatus)
		protected.POST("/tasks/:id/comments", s.addComment)
		protected.POST("/tasks/:id/attachments", s.addAttachment)

		protected.GET("/calendar", s.listCalendar)
		protected.POST("/calendar", s.addCalendarEntry)
		protected.PATCH("/calendar/:id", s.updateCalendarEntry)
		protected.DELETE("/calendar/:id", s.deleteCalendarEntry)
		protected.GET("/calendar/views/portfolio/:portfolio", s.portfolioView)
		protected.GET("/calendar/views/shared", s.sharedView)
		protected.GET("/calendar/views/dashboard", s.dashboardView)

		protected.GET("/fundraising", s.listFundraising)
		protected.POST("/fundraising", s.createFundraising)
		protected.GET("/fundraising/total", s.totalFundraising)
		protected.PATCH("/fundraising/:id", s.updateFundraising)
		protected.DELETE("/fundraising/:id", s.deleteFundraising)

		protected.GET("/reimbursements", s.listReimbursements)
		protected.POST("/reimbursements", s.submitReimbursement)
		protected.POST("/reimbursements/:id/approve", s.approveReimbursement)
		protected.POST("/reimbursements/:id/reject", s.rejectReimbursement)
		protected.DELETE("/reimbursements/:id", s.deleteReimbursement)

		protected.GET("/minutes", s.listMinutes)
		protected.POST("/minutes", s.addMinute)
		protected.DELETE("/minutes/:id", s.deleteMinute)

		protected.GET("/notifications", s.listNotifications)
		protected.GET("/notifications/unread-count", s.unreadCount)
		protected.POST("/notifications/read-all", s.markAllRead)
		protected.POST("/notifications/:id/read", s.markRead)
		protected.DELETE("/notifications/:id", s.clearNotification)
	}
	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Debug("request")
	}
}
