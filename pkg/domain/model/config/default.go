package config

import "github.com/geunaseh/jeumala/pkg/domain/types"

func options(pairs ...string) []FieldOption {
	opts := make([]FieldOption, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		opts = append(opts, FieldOption{Value: pairs[i], Label: pairs[i+1]})
	}
	return opts
}

// DefaultSchema returns the built-in resources used when no schema file is
// configured. A fresh copy is returned on every call.
func DefaultSchema() *Schema {
	return &Schema{
		Resources: []ResourceSchema{
			{
				Title:     "Articles",
				Endpoint:  types.ResourceArticles,
				Public:    true,
				SlugField: "slug",
				Fields: []FieldDescriptor{
					{Name: "title", Label: "Title", Kind: types.FieldKindText, Required: true},
					{Name: "slug", Label: "Slug", Kind: types.FieldKindText, Required: true},
					{Name: "summary", Label: "Summary", Kind: types.FieldKindTextArea},
					{Name: "content", Label: "Content", Kind: types.FieldKindTextArea, Sanitize: true},
					{Name: "coverImage", Label: "Cover Image URL", Kind: types.FieldKindText},
					{Name: "tags", Label: "Tags (comma separated)", Kind: types.FieldKindTags},
				},
			},
			{
				Title:    "Media",
				Endpoint: types.ResourceMedia,
				Public:   true,
				Fields: []FieldDescriptor{
					{Name: "title", Label: "Title", Kind: types.FieldKindText, Required: true},
					{Name: "type", Label: "Type", Kind: types.FieldKindSelect,
						Options: options(types.MediaTypeImage.String(), "Image", types.MediaTypeVideo.String(), "Video")},
					{Name: "url", Label: "URL", Kind: types.FieldKindText, Required: true},
					{Name: "description", Label: "Description", Kind: types.FieldKindText},
				},
			},
			{
				Title:     "Documents",
				Endpoint:  types.ResourceDocuments,
				Public:    true,
				SlugField: "slug",
				Filters:   map[string]string{"doc_type": "docType"},
				Fields: []FieldDescriptor{
					{Name: "title", Label: "Title", Kind: types.FieldKindText, Required: true},
					{Name: "slug", Label: "Slug", Kind: types.FieldKindText, Required: true},
					{Name: "docType", Label: "Type", Kind: types.FieldKindSelect, Required: true,
						Options: options(
							types.DocTypeDocumentation.String(), "Documentation",
							types.DocTypeActivity.String(), "Activity",
							types.DocTypeReport.String(), "Report",
						)},
					{Name: "description", Label: "Description", Kind: types.FieldKindText},
					{Name: "content", Label: "Content", Kind: types.FieldKindTextArea, Sanitize: true},
				},
			},
			{
				Title:    "Members",
				Endpoint: types.ResourceMembers,
				Public:   true,
				SortBy:   "createdAt",
				SortAsc:  true,
				Limit:    200,
				Fields: []FieldDescriptor{
					{Name: "name", Label: "Name", Kind: types.FieldKindText, Required: true},
					{Name: "position", Label: "Position", Kind: types.FieldKindText},
					{Name: "division", Label: "Division", Kind: types.FieldKindText},
				},
			},
			{
				Title:     "Events",
				Endpoint:  types.ResourceEvents,
				Public:    true,
				SlugField: "slug",
				SortBy:    "date",
				Fields: []FieldDescriptor{
					{Name: "title", Label: "Title", Kind: types.FieldKindText, Required: true},
					{Name: "slug", Label: "Slug", Kind: types.FieldKindText, Required: true},
					{Name: "date", Label: "Date", Kind: types.FieldKindDate, Required: true},
					{Name: "time", Label: "Time", Kind: types.FieldKindText},
					{Name: "location", Label: "Location", Kind: types.FieldKindText},
					{Name: "description", Label: "Description", Kind: types.FieldKindTextArea},
					{Name: "bannerImage", Label: "Banner Image URL", Kind: types.FieldKindText},
					{Name: "capacity", Label: "Capacity", Kind: types.FieldKindNumber},
				},
			},
			{
				Title:    "Tasks",
				Endpoint: types.ResourceTasks,
				Filters:  map[string]string{"status": "status", "assignee": "assignee"},
				Limit:    100,
				Fields: []FieldDescriptor{
					{Name: "title", Label: "Title", Kind: types.FieldKindText, Required: true},
					{Name: "description", Label: "Description", Kind: types.FieldKindTextArea},
					{Name: "dueDate", Label: "Due Date", Kind: types.FieldKindDate},
					{Name: "assignee", Label: "Assignee", Kind: types.FieldKindText},
					{Name: "priority", Label: "Priority", Kind: types.FieldKindSelect,
						Options: options(
							types.TaskPriorityMedium.String(), "Medium",
							types.TaskPriorityLow.String(), "Low",
							types.TaskPriorityHigh.String(), "High",
						)},
					{Name: "status", Label: "Status", Kind: types.FieldKindSelect,
						Options: options(
							types.TaskStatusPending.String(), "Pending",
							types.TaskStatusInProgress.String(), "In Progress",
							types.TaskStatusDone.String(), "Done",
						)},
					{Name: "remindAt", Label: "Remind At", Kind: types.FieldKindDateTime},
				},
			},
			{
				Title:    "Registrations",
				Endpoint: types.ResourceRegistrations,
				Hidden:   true,
				Filters:  map[string]string{"event_id": "eventId"},
				Fields: []FieldDescriptor{
					{Name: "fullName", Label: "Full Name", Kind: types.FieldKindText, Required: true},
					{Name: "email", Label: "Email", Kind: types.FieldKindText, Required: true},
					{Name: "phone", Label: "Phone", Kind: types.FieldKindText, Required: true},
					{Name: "organization", Label: "Organization", Kind: types.FieldKindText},
					{Name: "notes", Label: "Notes", Kind: types.FieldKindTextArea},
				},
			},
		},
	}
}
