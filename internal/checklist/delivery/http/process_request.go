package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateSessionReq binds and validates the create session body.
func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSetCheckedReq binds the direct-write body plus URI params.
func (h *handler) processSetCheckedReq(c *gin.Context) (setCheckedReq, error) {
	var req setCheckedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	req.ItemID = c.Param("itemID")
	return req, req.validate()
}

// processFollowUpReq binds the follow-up body plus URI param.
func (h *handler) processFollowUpReq(c *gin.Context) (followUpReq, error) {
	var req followUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	return req, req.validate()
}
