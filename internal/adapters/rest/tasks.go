package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ircportal/internal/domain"
	"ircportal/internal/ports/input"
)

// listTasks accepts one filter: portfolio, assignee, createdBy or due
// (overdue | soon).
func (s *server) listTasks(c *gin.Context) {
	ctx := c.Request.Context()
	switch {
	case c.Query("portfolio") != "":
		tasks, err := s.Tasks.GetTasksByPortfolio(ctx, domain.Portfolio(c.Query("portfolio")))
		s.respond(c, http.StatusOK, tasks, err)
	case c.Query("assignee") != "":
		tasks, err := s.Tasks.GetTasksByAssignee(ctx, c.Query("assignee"))
		s.respond(c, http.StatusOK, tasks, err)
	case c.Query("createdBy") != "":
		tasks, err := s.Tasks.GetTasksByVP(ctx, c.Query("createdBy"))
		s.respond(c, http.StatusOK, tasks, err)
	case c.Query("due") == "overdue":
		tasks, err := s.Tasks.GetOverdueTasks(ctx)
		s.respond(c, http.StatusOK, tasks, err)
	case c.Query("due") == "soon":
		tasks, err := s.Tasks.GetTasksDueSoon(ctx)
		s.respond(c, http.StatusOK, tasks, err)
	default:
		tasks, err := s.Tasks.ListTasks(ctx)
		s.respond(c, http.StatusOK, tasks, err)
	}
}

func (s *server) createTask(c *gin.Context) {
	var in input.CreateTaskInput
	if !s.bind(c, &in) {
		return
	}
	task, err := s.Tasks.CreateTask(c.Request.Context(), currentUser(c), in)
	s.respond(c, http.StatusCreated, task, err)
}

func (s *server) getTask(c *gin.Context) {
	task, err := s.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	s.respond(c, http.StatusOK, task, err)
}

func (s *server) updateTask(c *gin.Context) {
	var patch input.TaskPatch
	if !s.bind(c, &patch) {
		return
	}
	task, err := s.Tasks.UpdateTask(c.Request.Context(), c.Param("id"), patch)
	s.respond(c, http.StatusOK, task, err)
}

func (s *server) deleteTask(c *gin.Context) {
	err := s.Tasks.DeleteTask(c.Request.Context(), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}

func (s *server) updateTaskStatus(c *gin.Context) {
	var req statusRequest
	if !s.bind(c, &req) {
		return
	}
	task, err := s.Tasks.UpdateTaskStatus(c.Request.Context(), c.Param("id"), domain.TaskStatus(req.Status))
	s.respond(c, http.StatusOK, task, err)
}

func (s *server) addComment(c *gin.Context) {
	var in input.CommentInput
	if !s.bind(c, &in) {
		return
	}
	if in.Author == "" {
		if u := currentUser(c); u != nil {
			in.Author, in.AuthorRole = u.Name, string(u.Role)
		}
	}
	task, err := s.Tasks.AddComment(c.Request.Context(), c.Param("id"), in)
	s.respond(c, http.StatusCreated, task, err)
}

func (s *server) addAttachment(c *gin.Context) {
	var in input.AttachmentInput
	if !s.bind(c, &in) {
		return
	}
	if in.UploadedBy == "" {
		if u := currentUser(c); u != nil {
			in.UploadedBy = u.Name
		}
	}
	task, err := s.Tasks.AddAttachment(c.Request.Context(), c.Param("id"), in)
	s.respond(c, http.StatusCreated, task, err)
}
