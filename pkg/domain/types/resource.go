package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// ResourceName identifies a REST resource collection, e.g. "articles". It is
// used both as the URL path segment and as the storage collection name.
type ResourceName string

const (
	ResourceArticles      ResourceName = "articles"
	ResourceMedia         ResourceName = "media"
	ResourceDocuments     ResourceName = "documents"
	ResourceEvents        ResourceName = "events"
	ResourceTasks         ResourceName = "tasks"
	ResourceMembers       ResourceName = "members"
	ResourceRegistrations ResourceName = "registrations"
)

var resourcePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Validate checks if the ResourceName is valid
func (r ResourceName) Validate() error {
	if r == "" {
		return goerr.New("resource name cannot be empty")
	}
	if !resourcePattern.MatchString(string(r)) {
		return goerr.New("resource name must be lowercase alphanumeric with hyphens", goerr.V("resource", r))
	}
	return nil
}

// String returns the string representation of ResourceName
func (r ResourceName) String() string {
	return string(r)
}
