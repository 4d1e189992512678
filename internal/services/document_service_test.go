package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"bents-gateway/internal/downstream"
	gateway_errors "bents-gateway/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forwardCall struct {
	method string
	path   string
	body   json.RawMessage
}

type mockForwarder struct {
	calls     []forwardCall
	fields    map[string]string
	file      downstream.FilePart
	response  json.RawMessage
	err       error
	multipart bool
}

func (m *mockForwarder) Forward(_ context.Context, method, path string, body json.RawMessage) (json.RawMessage, error) {
	m.calls = append(m.calls, forwardCall{method: method, path: path, body: body})
	return m.response, m.err
}

func (m *mockForwarder) ForwardMultipart(_ context.Context, path string, fields map[string]string, file downstream.FilePart) (json.RawMessage, error) {
	m.multipart = true
	m.calls = append(m.calls, forwardCall{method: http.MethodPost, path: path})
	m.fields = fields
	m.file = file
	return m.response, m.err
}

type mockArchive struct {
	index, file string
	content     []byte
	err         error
}

func (a *mockArchive) PutTranscript(_ context.Context, indexName, fileName, _ string, content []byte) (string, error) {
	a.index, a.file, a.content = indexName, fileName, content
	return "transcripts/" + indexName + "/" + fileName, a.err
}

func TestDocumentService_RoutesToDownstream(t *testing.T) {
	payload := json.RawMessage(`{"title":"X"}`)
	cases := []struct {
		name   string
		call   func(s *DocumentService) (json.RawMessage, error)
		method string
		path   string
		body   json.RawMessage
	}{
		{"chat", func(s *DocumentService) (json.RawMessage, error) { return s.Chat(context.Background(), payload) }, http.MethodPost, ChatPath, payload},
		{"list", func(s *DocumentService) (json.RawMessage, error) { return s.ListDocuments(context.Background()) }, http.MethodGet, DocumentsPath, nil},
		{"add", func(s *DocumentService) (json.RawMessage, error) { return s.AddDocument(context.Background(), payload) }, http.MethodPost, AddDocumentPath, payload},
		{"delete", func(s *DocumentService) (json.RawMessage, error) { return s.DeleteDocument(context.Background(), payload) }, http.MethodPost, DeleteDocumentPath, payload},
		{"update", func(s *DocumentService) (json.RawMessage, error) { return s.UpdateDocument(context.Background(), payload) }, http.MethodPost, UpdateDocumentPath, payload},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := &mockForwarder{response: json.RawMessage(`{"success":true}`)}
			out, err := tc.call(NewDocumentService(fwd, nil, nil))
			require.NoError(t, err)
			assert.Equal(t, `{"success":true}`, string(out))

			require.Len(t, fwd.calls, 1)
			assert.Equal(t, tc.method, fwd.calls[0].method)
			assert.Equal(t, tc.path, fwd.calls[0].path)
			assert.Equal(t, tc.body, fwd.calls[0].body)
		})
	}
}

func TestDocumentService_PropagatesDownstreamError(t *testing.T) {
	fwd := &mockForwarder{err: &gateway_errors.DownstreamError{Method: "POST", Path: ChatPath, Err: errors.New("refused")}}

	_, err := NewDocumentService(fwd, nil, nil).Chat(context.Background(), json.RawMessage(`{}`))

	var downstreamErr *gateway_errors.DownstreamError
	assert.ErrorAs(t, err, &downstreamErr)
}

func TestDocumentService_UploadArchivesThenForwards(t *testing.T) {
	fwd := &mockForwarder{response: json.RawMessage(`{"success":true}`)}
	archive := &mockArchive{}
	svc := NewDocumentService(fwd, archive, nil)

	out, err := svc.UploadDocument(context.Background(), TranscriptUpload{
		IndexName: "bents", FileName: "talk.docx", Content: []byte("docx"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"success":true}`, string(out))

	assert.Equal(t, "bents", archive.index)
	assert.Equal(t, "talk.docx", archive.file)
	assert.True(t, fwd.multipart)
	assert.Equal(t, UploadDocumentPath, fwd.calls[0].path)
	assert.Equal(t, map[string]string{"index_name": "bents"}, fwd.fields)
	assert.Equal(t, downstream.FilePart{Field: "file", FileName: "talk.docx", Content: []byte("docx")}, fwd.file)
}

func TestDocumentService_UploadArchiveFailureStillForwards(t *testing.T) {
	fwd := &mockForwarder{response: json.RawMessage(`{"success":true}`)}
	svc := NewDocumentService(fwd, &mockArchive{err: errors.New("access denied")}, nil)

	_, err := svc.UploadDocument(context.Background(), TranscriptUpload{IndexName: "bents", FileName: "t.docx"})
	require.NoError(t, err)
	assert.True(t, fwd.multipart)
}
