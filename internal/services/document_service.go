package services

import (
	"context"
	"encoding/json"
	"net/http"

	"bents-gateway/internal/downstream"
	"bents-gateway/pkg/logger"
)

// Downstream routes relayed by the gateway.
const (
	ChatPath           = "/chat"
	DocumentsPath      = "/documents"
	AddDocumentPath    = "/add_document"
	DeleteDocumentPath = "/delete_document"
	UpdateDocumentPath = "/update_document"
	UploadDocumentPath = "/upload_document"
)

type Forwarder interface {
	Forward(ctx context.Context, method, path string, body json.RawMessage) (json.RawMessage, error)
	ForwardMultipart(ctx context.Context, path string, fields map[string]string, file downstream.FilePart) (json.RawMessage, error)
}

type TranscriptArchive interface {
	PutTranscript(ctx context.Context, indexName, fileName, contentType string, content []byte) (string, error)
}

type TranscriptUpload struct {
	IndexName   string
	FileName    string
	ContentType string
	Content     []byte
}

// DocumentService relays chat and product-document calls. Payloads are opaque.
type DocumentService struct {
	forwarder Forwarder
	archive   TranscriptArchive
	logger    *logger.Logger
}

// NewDocumentService builds the relay. archive may be nil to disable archiving.
func NewDocumentService(forwarder Forwarder, archive TranscriptArchive, l *logger.Logger) *DocumentService {
	if l == nil {
		l = logger.NewNop()
	}
	return &DocumentService{forwarder: forwarder, archive: archive, logger: l}
}

func (s *DocumentService) Chat(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return s.forwarder.Forward(ctx, http.MethodPost, ChatPath, payload)
}

func (s *DocumentService) ListDocuments(ctx context.Context) (json.RawMessage, error) {
	return s.forwarder.Forward(ctx, http.MethodGet, DocumentsPath, nil)
}

func (s *DocumentService) AddDocument(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return s.forwarder.Forward(ctx, http.MethodPost, AddDocumentPath, payload)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return s.forwarder.Forward(ctx, http.MethodPost, DeleteDocumentPath, payload)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return s.forwarder.Forward(ctx, http.MethodPost, UpdateDocumentPath, payload)
}

// UploadDocument keeps a copy of the transcript when archiving is enabled, then
// forwards the upload. Archive failures do not stop the forward.
func (s *DocumentService) UploadDocument(ctx context.Context, in TranscriptUpload) (json.RawMessage, error) {
	if s.archive != nil {
		key, err := s.archive.PutTranscript(ctx, in.IndexName, in.FileName, in.ContentType, in.Content)
		if err != nil {
			s.logger.WithContext(ctx).Warnf("failed to archive transcript %q: %v", in.FileName, err)
		} else {
			s.logger.WithContext(ctx).Infof("archived transcript %q as %s", in.FileName, key)
		}
	}

	return s.forwarder.ForwardMultipart(ctx, UploadDocumentPath,
		map[string]string{"index_name": in.IndexName},
		downstream.FilePart{Field: "file", FileName: in.FileName, Content: in.Content},
	)
}
