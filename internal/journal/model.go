package journal

// UpsertRequest is the admin form payload for a journal entry. Date is a
// display string; when blank it defaults to the creation day. Author
// defaults to the site owner's byline.
type UpsertRequest struct {
	Title     string   `json:"title" validate:"required"`
	Date      string   `json:"date"`
	Content   string   `json:"content"`
	ImageURLs []string `json:"imageUrls" validate:"required,min=1,dive,imageref"`
	Author    string   `json:"author"`
}
