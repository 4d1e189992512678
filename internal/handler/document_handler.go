package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bents-gateway/internal/services"
	"bents-gateway/internal/transport/httpdto"
	gateway_errors "bents-gateway/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	chatFailedMessage           = "An error occurred while processing your chat request."
	listDocumentsFailedMessage  = "An error occurred while fetching documents."
	addDocumentFailedMessage    = "An error occurred while adding the document."
	deleteDocumentFailedMessage = "An error occurred while deleting the document."
	updateDocumentFailedMessage = "An error occurred while updating the document."
	uploadDocumentFailedMessage = "An error occurred while uploading the document."
	bodyTooLargeMessage         = "Request body too large."
	missingFileMessage          = "No file provided."
)

// maxJSONBodyBytes caps passthrough request bodies.
const maxJSONBodyBytes = 1 << 20

var emptyObject = json.RawMessage(`{}`)

type DocumentRelay interface {
	Chat(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	ListDocuments(ctx context.Context) (json.RawMessage, error)
	AddDocument(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	DeleteDocument(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	UpdateDocument(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	UploadDocument(ctx context.Context, in services.TranscriptUpload) (json.RawMessage, error)
}

// DocumentHandler relays chat and document routes to the downstream service.
type DocumentHandler struct {
	service DocumentRelay
}

func NewDocumentHandler(service DocumentRelay) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Chat handles POST /chat.
func (h *DocumentHandler) Chat(c *gin.Context) {
	h.relayBody(c, h.service.Chat, chatFailedMessage)
}

// ListDocuments handles GET /documents.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	out, err := h.service.ListDocuments(c.Request.Context())
	if err != nil {
		respondError(c, err, listDocumentsFailedMessage)
		return
	}
	writeRaw(c, out)
}

// AddDocument handles POST /add_document.
func (h *DocumentHandler) AddDocument(c *gin.Context) {
	h.relayBody(c, h.service.AddDocument, addDocumentFailedMessage)
}

// DeleteDocument handles POST /delete_document.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	h.relayBody(c, h.service.DeleteDocument, deleteDocumentFailedMessage)
}

// UpdateDocument handles POST /update_document.
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	h.relayBody(c, h.service.UpdateDocument, updateDocumentFailedMessage)
}

// UploadDocument handles POST /upload_document (multipart: file, index_name).
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	var form httpdto.UploadDocumentForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c, err, invalidBodyMessage)
		return
	}

	header, err := c.FormFile(httpdto.UploadFileField)
	if err != nil {
		respondBadRequest(c, err, missingFileMessage)
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err, uploadDocumentFailedMessage)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err, uploadDocumentFailedMessage)
		return
	}

	out, err := h.service.UploadDocument(c.Request.Context(), services.TranscriptUpload{
		IndexName:   form.IndexName,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		respondError(c, err, uploadDocumentFailedMessage)
		return
	}
	writeRaw(c, out)
}

func (h *DocumentHandler) relayBody(c *gin.Context, forward func(context.Context, json.RawMessage) (json.RawMessage, error), failMessage string) {
	payload, err := readJSONBody(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			c.JSON(http.StatusRequestEntityTooLarge, httpdto.NewErrorResponse(bodyTooLargeMessage))
			return
		}
		respondBadRequest(c, err, invalidBodyMessage)
		return
	}

	out, err := forward(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err, failMessage)
		return
	}
	writeRaw(c, out)
}

// readJSONBody returns the request body unchanged after checking it is JSON.
// An empty body becomes {}.
func readJSONBody(c *gin.Context) (json.RawMessage, error) {
	if c.Request.Body == nil {
		return emptyObject, nil
	}
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyObject, nil
	}
	if !json.Valid(data) {
		return nil, gateway_errors.ErrInvalidInput
	}
	return json.RawMessage(data), nil
}

func writeRaw(c *gin.Context, body json.RawMessage) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
