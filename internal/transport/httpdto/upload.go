package httpdto

// UploadDocumentForm is the multipart form for POST /upload_document.
type UploadDocumentForm struct {
	IndexName string `form:"index_name"`
}

const UploadFileField = "file"
