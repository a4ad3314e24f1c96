package storage

import (
	"mime"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidName is returned for object names that could escape the store
var ErrInvalidName = goerr.New("invalid object name")

// validateName accepts a single path element without traversal
func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return goerr.Wrap(ErrInvalidName, "object name must be a plain file name", goerr.V("name", name))
	}
	return nil
}

// contentTypeOf guesses the content type from the file extension
func contentTypeOf(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
