package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	gopath "path"
	"strings"

	"github.com/felixgeelhaar/sharepoint-go/domain/drive"
)

// Client implements drive.Service.
var _ drive.Service = (*Client)(nil)

// driveItem is the subset of the Graph drive item resource the connector
// reads. Facets distinguish folders from files.
type driveItem struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	WebURL               string       `json:"webUrl"`
	Size                 int64        `json:"size"`
	CreatedDateTime      string       `json:"createdDateTime"`
	LastModifiedDateTime string       `json:"lastModifiedDateTime"`
	Folder               *folderFacet `json:"folder"`
	File                 *fileFacet   `json:"file"`
}

type folderFacet struct {
	ChildCount int `json:"childCount"`
}

type fileFacet struct {
	MimeType string `json:"mimeType"`
}

// itemPage is one page of a children listing.
type itemPage struct {
	Value    []driveItem `json:"value"`
	NextLink string      `json:"@odata.nextLink"`
}

// listChildren fetches all children of the folder at path, following
// pagination links.
func (c *Client) listChildren(ctx context.Context, path string) ([]driveItem, error) {
	if _, err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	var items []driveItem
	next := c.itemURL(path) + "/children"
	for next != "" {
		var page itemPage
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, err
		}
		items = append(items, page.Value...)
		next = page.NextLink
	}
	return items, nil
}

// ListFolders returns the names of folders under path in API order.
func (c *Client) ListFolders(ctx context.Context, path string) ([]string, error) {
	items, err := c.listChildren(ctx, path)
	if err != nil {
		return nil, err
	}

	folders := make([]string, 0, len(items))
	for _, it := range items {
		if it.Folder != nil {
			folders = append(folders, it.Name)
		}
	}
	return folders, nil
}

// CreateFolder creates a folder under path and returns the updated listing
// of the parent. Name collisions are renamed by the service.
func (c *Client) CreateFolder(ctx context.Context, name, path string) ([]string, error) {
	if _, err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]any{
		"name":                              name,
		"folder":                            map[string]any{},
		"@microsoft.graph.conflictBehavior": "rename",
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling create folder request: %w", err)
	}

	res, err := c.do(ctx, http.MethodPost, c.itemURL(path)+"/children", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	res.Body.Close()

	return c.ListFolders(ctx, path)
}

// ListDocuments returns the documents directly under path.
func (c *Client) ListDocuments(ctx context.Context, path string) ([]drive.Document, error) {
	items, err := c.listChildren(ctx, path)
	if err != nil {
		return nil, err
	}

	docs := make([]drive.Document, 0, len(items))
	for _, it := range items {
		if it.File == nil {
			continue
		}
		docs = append(docs, drive.Document{
			Name:     it.Name,
			URL:      it.WebURL,
			Size:     it.Size,
			Created:  it.CreatedDateTime,
			Modified: it.LastModifiedDateTime,
		})
	}
	return docs, nil
}

// CreateDocument uploads text content as a new file under path and returns
// the updated document listing of the folder.
func (c *Client) CreateDocument(ctx context.Context, path, name, content string) ([]drive.Document, error) {
	if _, err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	target := joinPath(path, name)
	uploadURL := c.itemURL(target) + "/content"
	res, err := c.do(ctx, http.MethodPut, uploadURL, "application/octet-stream", strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	res.Body.Close()

	return c.ListDocuments(ctx, path)
}

// GetDocumentContent downloads the file at path and classifies it as text
// or binary by extension.
func (c *Client) GetDocumentContent(ctx context.Context, path string) (drive.Content, error) {
	if _, err := c.ensureSession(ctx); err != nil {
		return drive.Content{}, err
	}

	var meta driveItem
	if err := c.getJSON(ctx, c.itemURL(path), &meta); err != nil {
		return drive.Content{}, err
	}

	res, err := c.do(ctx, http.MethodGet, c.itemURL(path)+"/content", "", nil)
	if err != nil {
		return drive.Content{}, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return drive.Content{}, fmt.Errorf("reading content: %w", err)
	}

	content := drive.ClassifyContent(path, raw)
	if meta.Name != "" {
		content.Name = meta.Name
	}
	return content, nil
}

// DeleteFile deletes the file at path.
func (c *Client) DeleteFile(ctx context.Context, path string) error {
	if _, err := c.ensureSession(ctx); err != nil {
		return err
	}

	res, err := c.do(ctx, http.MethodDelete, c.itemURL(path), "", nil)
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

// joinPath joins a folder path and a file name into a drive path.
func joinPath(path, name string) string {
	return gopath.Join(strings.Trim(path, "/"), name)
}
