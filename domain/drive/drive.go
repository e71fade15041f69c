// Package drive provides the domain model for remote drive operations.
package drive

import "context"

// Service defines the file-and-folder operations the connector exposes.
// The Microsoft Graph implementation lives in infrastructure/graph.
type Service interface {
	// ListFolders returns the names of folders under path, or under the
	// drive root when path is empty.
	ListFolders(ctx context.Context, path string) ([]string, error)

	// CreateFolder creates a folder under path (drive root when empty)
	// and returns the updated folder listing of the parent.
	CreateFolder(ctx context.Context, name, path string) ([]string, error)

	// ListDocuments returns the documents directly under path.
	ListDocuments(ctx context.Context, path string) ([]Document, error)

	// CreateDocument uploads text content as a new file under path and
	// returns the updated document listing of the folder.
	CreateDocument(ctx context.Context, path, name, content string) ([]Document, error)

	// GetDocumentContent downloads the file at path and classifies it as
	// text or binary.
	GetDocumentContent(ctx context.Context, path string) (Content, error)

	// DeleteFile deletes the file at path.
	DeleteFile(ctx context.Context, path string) error
}

// Document is the plain record returned for a file in a folder listing.
type Document struct {
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Size     int64  `json:"size"`
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
}

// ContentType tags downloaded content as text or binary.
type ContentType string

const (
	ContentText   ContentType = "text"
	ContentBinary ContentType = "binary"
)

// Content is the record returned for a downloaded document. Exactly one of
// Text or Base64 is set, depending on Type.
type Content struct {
	Name   string      `json:"name"`
	Type   ContentType `json:"content_type"`
	Text   string      `json:"content,omitempty"`
	Base64 string      `json:"content_base64,omitempty"`
	Size   int64       `json:"size"`
}
