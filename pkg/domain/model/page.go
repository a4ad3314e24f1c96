package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Page holds the editable hero block and free-form sections of a static page
// such as home, about or philosophy.
type Page struct {
	ID              string           `json:"id,omitempty" firestore:"id" bson:"id" yaml:"id"`
	PageID          string           `json:"pageId" firestore:"pageId" bson:"pageId" yaml:"pageId"`
	HeroTitle       string           `json:"heroTitle" firestore:"heroTitle" bson:"heroTitle" yaml:"heroTitle"`
	HeroSubtitle    string           `json:"heroSubtitle" firestore:"heroSubtitle" bson:"heroSubtitle" yaml:"heroSubtitle"`
	HeroDescription string           `json:"heroDescription" firestore:"heroDescription" bson:"heroDescription" yaml:"heroDescription"`
	HeroImage       string           `json:"heroImage" firestore:"heroImage" bson:"heroImage" yaml:"heroImage"`
	Sections        []map[string]any `json:"sections" firestore:"sections" bson:"sections" yaml:"sections"`
	UpdatedAt       time.Time        `json:"updatedAt,omitzero" firestore:"updatedAt" bson:"updatedAt" yaml:"updatedAt"`
}

// DefaultPage is returned for page IDs that were never saved
func DefaultPage(pageID string) *Page {
	return &Page{
		PageID:   pageID,
		Sections: []map[string]any{},
	}
}

// Validate checks the fields required to persist a page
func (p *Page) Validate() error {
	if p.PageID == "" {
		return goerr.New("page ID is required")
	}
	return nil
}
