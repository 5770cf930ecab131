package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ircportal/internal/ports/input"
)

func (s *server) listFundraising(c *gin.Context) {
	entries, err := s.Fundraising.ListEntries(c.Request.Context())
	s.respond(c, http.StatusOK, entries, err)
}

func (s *server) createFundraising(c *gin.Context) {
	var in input.FundraisingInput
	if !s.bind(c, &in) {
		return
	}
	entry, err := s.Fundraising.CreateEntry(c.Request.Context(), currentUser(c), in)
	s.respond(c, http.StatusCreated, entry, err)
}

func (s *server) totalFundraising(c *gin.Context) {
	total, err := s.Fundraising.GetTotalMoneyRaised(c.Request.Context())
	s.respond(c, http.StatusOK, gin.H{"total": total}, err)
}

func (s *server) updateFundraising(c *gin.Context) {
	var patch input.FundraisingPatch
	if !s.bind(c, &patch) {
		return
	}
	entry, err := s.Fundraising.UpdateEntry(c.Request.Context(), currentUser(c), c.Param("id"), patch)
	s.respond(c, http.StatusOK, entry, err)
}

func (s *server) deleteFundraising(c *gin.Context) {
	err := s.Fundraising.DeleteEntry(c.Request.Context(), currentUser(c), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}

func (s *server) listReimbursements(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("status") == "pending" {
		list, err := s.Reimbursements.GetPendingReimbursements(ctx)
		s.respond(c, http.StatusOK, list, err)
		return
	}
	list, err := s.Reimbursements.GetReimbursements(ctx)
	s.respond(c, http.StatusOK, list, err)
}

func (s *server) submitReimbursement(c *gin.Context) {
	var in input.ReimbursementInput
	if !s.bind(c, &in) {
		return
	}
	r, err := s.Reimbursements.SubmitReimbursement(c.Request.Context(), currentUser(c), in)
	s.respond(c, http.StatusCreated, r, err)
}

func (s *server) approveReimbursement(c *gin.Context) {
	var req commentRequest
	if !s.bind(c, &req) {
		return
	}
	r, err := s.Reimbursements.ApproveReimbursement(c.Request.Context(), currentUser(c), c.Param("id"), req.Comment)
	s.respond(c, http.StatusOK, r, err)
}

func (s *server) rejectReimbursement(c *gin.Context) {
	var req commentRequest
	if !s.bind(c, &req) {
		return
	}
	r, err := s.Reimbursements.RejectReimbursement(c.Request.Context(), currentUser(c), c.Param("id"), req.Comment)
	s.respond(c, http.StatusOK, r, err)
}

func (s *server) deleteReimbursement(c *gin.Context) {
	err := s.Reimbursements.DeleteReimbursement(c.Request.Context(), currentUser(c), c.Param("id"))
	s.respond(c, http.StatusNoContent, nil, err)
}
