package drive

import (
	"encoding/base64"
	"path"
	"strings"
)

// textExtensions are the file extensions decoded as UTF-8 text. Everything
// else is returned base64-encoded.
var textExtensions = map[string]struct{}{
	".txt":  {},
	".csv":  {},
	".json": {},
	".xml":  {},
	".html": {},
	".md":   {},
	".js":   {},
	".css":  {},
	".py":   {},
}

// IsTextPath reports whether the file at p should be decoded as text based
// on its extension.
func IsTextPath(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	_, ok := textExtensions[ext]
	return ok
}

// ClassifyContent builds a Content record from raw downloaded bytes, using
// the path's extension to pick text or binary representation.
func ClassifyContent(p string, raw []byte) Content {
	c := Content{
		Name: path.Base(p),
		Size: int64(len(raw)),
	}
	if IsTextPath(p) {
		c.Type = ContentText
		c.Text = string(raw)
	} else {
		c.Type = ContentBinary
		c.Base64 = base64.StdEncoding.EncodeToString(raw)
	}
	return c
}
