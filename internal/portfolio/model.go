package portfolio

// UpsertRequest is the admin form payload for creating or editing a work
// sample. Title and at least one image are required for save; pinning is a
// separate action.
type UpsertRequest struct {
	Category    string   `json:"category" validate:"required,category"`
	Title       string   `json:"title" validate:"required"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls" validate:"required,min=1,dive,imageref"`
}

type ListFilter struct {
	Category string
}
