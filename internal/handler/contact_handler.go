package handler

import (
	"context"
	"net/http"

	"bents-gateway/internal/domain/contact"
	"bents-gateway/internal/services"
	"bents-gateway/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

const (
	contactReceivedMessage = "Message received successfully!"
	contactFailedMessage   = "An error occurred while processing your request."
	invalidBodyMessage     = "Invalid JSON body."
)

type ContactSubmitter interface {
	Submit(ctx context.Context, in services.ContactInput) (*contact.Message, error)
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service ContactSubmitter
}

// NewContactHandler creates a contact handler.
func NewContactHandler(service ContactSubmitter) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req httpdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, invalidBodyMessage)
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), services.ContactInput{
		Name:    string(req.Name),
		Email:   string(req.Email),
		Subject: string(req.Subject),
		Message: string(req.Message),
	})
	if err != nil {
		respondError(c, err, contactFailedMessage)
		return
	}

	var resp httpdto.ContactResponse = httpdto.NewSuccessResponse(contactReceivedMessage, msg)
	c.JSON(http.StatusOK, resp)
}
