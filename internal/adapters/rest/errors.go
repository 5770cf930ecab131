package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ircportal/internal/domain"
)

var statusByCode = map[string]int{
	"invalid_credentials":  http.StatusUnauthorized,
	"not_authenticated":    http.StatusUnauthorized,
	"validation":           http.StatusBadRequest,
	"checklist_incomplete": http.StatusConflict,
	"invalid_transition":   http.StatusConflict,
	"reimbursement_closed": http.StatusConflict,
	"forbidden":            http.StatusForbidden,
}

func statusFor(err error) int {
	if domain.IsNotFound(err) {
		return http.StatusNotFound
	}
	if status, ok := statusByCode[domain.Code(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// fail writes err as {"code", "error", "fields"} with a localised message.
func (s *server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	code := domain.Code(err)
	if code == "" {
		code = "internal"
	}
	if status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error("request error")
	}

	body := gin.H{"code": code, "error": s.translator.T(s.requestLocale(c), "error."+code, nil)}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}
	c.AbortWithStatusJSON(status, body)
}

func (s *server) requestLocale(c *gin.Context) string {
	if lang := c.GetHeader("Accept-Language"); lang != "" {
		return s.translator.Match(lang)
	}
	return s.locale
}

// bind decodes the JSON body into dst, answering 400 on malformed input.
func (s *server) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		s.fail(c, domain.NewValidationError("body: "+err.Error()))
		return false
	}
	return true
}

// respond writes v with status, or the error when err is set.
func (s *server) respond(c *gin.Context, status int, v any, err error) {
	if err != nil {
		s.fail(c, err)
		return
	}
	if v == nil {
		c.Status(status)
		return
	}
	c.JSON(status, v)
}
