// Package sharepoint provides SharePoint/OneDrive file and folder tools.
package sharepoint

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/felixgeelhaar/sharepoint-go/domain/drive"
	"github.com/felixgeelhaar/sharepoint-go/domain/pack"
	"github.com/felixgeelhaar/sharepoint-go/domain/tool"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/logging"
	"github.com/felixgeelhaar/sharepoint-go/infrastructure/telemetry"
)

// Config configures the sharepoint pack.
type Config struct {
	// Service performs the remote drive operations (required).
	Service drive.Service

	// ReadOnly drops the write and delete tools from the pack.
	ReadOnly bool

	// Metrics records tool executions when set.
	Metrics *telemetry.MetricsProvider
}

// Option configures the sharepoint pack.
type Option func(*Config)

// WithReadOnly removes create_folder, create_document and delete_file.
func WithReadOnly() Option {
	return func(c *Config) {
		c.ReadOnly = true
	}
}

// WithMetrics attaches a metrics provider.
func WithMetrics(m *telemetry.MetricsProvider) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// New creates the sharepoint pack.
func New(svc drive.Service, opts ...Option) (*pack.Pack, error) {
	if svc == nil {
		return nil, errors.New("drive service is required")
	}

	cfg := Config{Service: svc}
	for _, opt := range opts {
		opt(&cfg)
	}

	builder := pack.NewBuilder("sharepoint").
		WithDescription("SharePoint/OneDrive file and folder operations").
		WithVersion("1.0.0").
		AddTools(
			cfg.listFoldersTool(),
			cfg.listDocumentsTool(),
			cfg.getDocumentContentTool(),
		)

	if !cfg.ReadOnly {
		builder.AddTools(
			cfg.createFolderTool(),
			cfg.createDocumentTool(),
			cfg.deleteFileTool(),
		)
	}

	return builder.Build(), nil
}

// instrument wraps a handler with logging and metrics.
func (c *Config) instrument(name string, h tool.Handler) tool.Handler {
	return func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
		start := time.Now()
		result, err := h(ctx, input)
		elapsed := time.Since(start)

		c.Metrics.RecordToolExecution(ctx, name, elapsed, err)
		if err != nil {
			logging.Warn().
				Add(logging.ToolName(name)).
				Add(logging.Duration(elapsed)).
				Add(logging.Err(err)).
				Msg("tool failed")
		} else {
			logging.Debug().
				Add(logging.ToolName(name)).
				Add(logging.Duration(elapsed)).
				Msg("tool executed")
		}

		result.Duration = elapsed
		return result, err
	}
}

type listFoldersInput struct {
	Path string `json:"path,omitempty"`
}

type listFoldersOutput struct {
	Folders []string `json:"folders"`
	Count   int      `json:"count"`
}

func (c *Config) listFoldersTool() tool.Tool {
	return tool.NewBuilder("list_folders").
		WithDescription("List folders in the specified directory, or the drive root if no path is given").
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"path": tool.StringProperty("Path to the parent folder; empty for the drive root"),
		}, nil)).
		ReadOnly().
		WithHandler(c.instrument("list_folders", func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var in listFoldersInput
			if err := json.Unmarshal(input, &in); err != nil {
				return tool.Result{}, err
			}

			folders, err := c.Service.ListFolders(ctx, in.Path)
			if err != nil {
				return tool.Result{}, err
			}

			return tool.MarshalResult(listFoldersOutput{
				Folders: folders,
				Count:   len(folders),
			})
		})).
		MustBuild()
}

type createFolderInput struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

func (c *Config) createFolderTool() tool.Tool {
	return tool.NewBuilder("create_folder").
		WithDescription("Create a folder in the specified directory, or the drive root if no path is given; returns the updated folder listing").
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"name": tool.StringProperty("Name of the folder to create"),
			"path": tool.StringProperty("Path to the parent folder; empty for the drive root"),
		}, []string{"name"})).
		WithHandler(c.instrument("create_folder", func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var in createFolderInput
			if err := json.Unmarshal(input, &in); err != nil {
				return tool.Result{}, err
			}
			if in.Name == "" {
				return tool.Result{}, errors.New("folder name is required")
			}

			folders, err := c.Service.CreateFolder(ctx, in.Name, in.Path)
			if err != nil {
				return tool.Result{}, err
			}

			return tool.MarshalResult(listFoldersOutput{
				Folders: folders,
				Count:   len(folders),
			})
		})).
		MustBuild()
}

type listDocumentsInput struct {
	Path string `json:"path"`
}

type listDocumentsOutput struct {
	Documents []drive.Document `json:"documents"`
	Count     int              `json:"count"`
}

func (c *Config) listDocumentsTool() tool.Tool {
	return tool.NewBuilder("list_documents").
		WithDescription("List all documents in the specified folder").
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"path": tool.StringProperty("Path to the folder whose documents are listed"),
		}, []string{"path"})).
		ReadOnly().
		WithHandler(c.instrument("list_documents", func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var in listDocumentsInput
			if err := json.Unmarshal(input, &in); err != nil {
				return tool.Result{}, err
			}

			docs, err := c.Service.ListDocuments(ctx, in.Path)
			if err != nil {
				return tool.Result{}, err
			}

			return tool.MarshalResult(listDocumentsOutput{
				Documents: docs,
				Count:     len(docs),
			})
		})).
		MustBuild()
}

type createDocumentInput struct {
	Path    string `json:"path"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (c *Config) createDocumentTool() tool.Tool {
	return tool.NewBuilder("create_document").
		WithDescription("Upload text content as a new document in the specified folder; returns the updated document listing").
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"path":    tool.StringProperty("Path to the folder where the document is created"),
			"name":    tool.StringProperty("Name of the document to create"),
			"content": tool.StringProperty("Text content to write into the document"),
		}, []string{"path", "name", "content"})).
		WithHandler(c.instrument("create_document", func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var in createDocumentInput
			if err := json.Unmarshal(input, &in); err != nil {
				return tool.Result{}, err
			}
			if in.Name == "" {
				return tool.Result{}, errors.New("document name is required")
			}

			docs, err := c.Service.CreateDocument(ctx, in.Path, in.Name, in.Content)
			if err != nil {
				return tool.Result{}, err
			}

			return tool.MarshalResult(listDocumentsOutput{
				Documents: docs,
				Count:     len(docs),
			})
		})).
		MustBuild()
}

type getDocumentContentInput struct {
	Path string `json:"path"`
}

func (c *Config) getDocumentContentTool() tool.Tool {
	return tool.NewBuilder("get_document_content").
		WithDescription("Download a document; text files are returned as UTF-8, everything else base64-encoded").
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"path": tool.StringProperty("Path to the document"),
		}, []string{"path"})).
		ReadOnly().
		WithHandler(c.instrument("get_document_content", func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var in getDocumentContentInput
			if err := json.Unmarshal(input, &in); err != nil {
				return tool.Result{}, err
			}
			if in.Path == "" {
				return tool.Result{}, errors.New("document path is required")
			}

			content, err := c.Service.GetDocumentContent(ctx, in.Path)
			if err != nil {
				return tool.Result{}, err
			}

			return tool.MarshalResult(content)
		})).
		MustBuild()
}

type deleteFileInput struct {
	Path string `json:"path"`
}

type deleteFileOutput struct {
	Path    string `json:"path"`
	Deleted bool   `json:"deleted"`
}

func (c *Config) deleteFileTool() tool.Tool {
	return tool.NewBuilder("delete_file").
		WithDescription("Delete a file from the drive").
		Destructive().
		Idempotent().
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"path": tool.StringProperty("Path to the file to delete"),
		}, []string{"path"})).
		WithHandler(c.instrument("delete_file", func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var in deleteFileInput
			if err := json.Unmarshal(input, &in); err != nil {
				return tool.Result{}, err
			}
			if in.Path == "" {
				return tool.Result{}, errors.New("file path is required")
			}

			if err := c.Service.DeleteFile(ctx, in.Path); err != nil {
				return tool.Result{}, err
			}

			return tool.MarshalResult(deleteFileOutput{
				Path:    in.Path,
				Deleted: true,
			})
		})).
		MustBuild()
}
