package types

// DocType partitions the documents resource into its public sections
type DocType string

const (
	DocTypeDocumentation DocType = "documentation"
	DocTypeActivity      DocType = "activity"
	DocTypeReport        DocType = "report"
)

// AllDocTypes returns all valid document types
func AllDocTypes() []DocType {
	return []DocType{
		DocTypeDocumentation,
		DocTypeActivity,
		DocTypeReport,
	}
}

// IsValid checks if the document type is valid
func (d DocType) IsValid() bool {
	switch d {
	case DocTypeDocumentation, DocTypeActivity, DocTypeReport:
		return true
	default:
		return false
	}
}

// String returns the string representation of the document type
func (d DocType) String() string {
	return string(d)
}

// MediaType distinguishes gallery images from videos
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// String returns the string representation of the media type
func (m MediaType) String() string {
	return string(m)
}
