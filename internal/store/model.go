package store

import "time"

const (
	CategoryApparel = "Apparel Design"
	CategoryFibre   = "Fibre Arts"
	CategoryVisual  = "Visual Arts"
	// CategoryJournal exists in the site's category enumeration for navigation
	// copy, but is never assigned to a portfolio item.
	CategoryJournal = "Journal"
)

// ItemCategories are the categories a portfolio item may carry.
var ItemCategories = []string{CategoryApparel, CategoryFibre, CategoryVisual}

// PortfolioItem is a published work sample. CreatedAt is epoch milliseconds
// and doubles as the default sort key.
type PortfolioItem struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Category    string   `bson:"category" json:"category"`
	Title       string   `bson:"title" json:"title"`
	Subtitle    string   `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description string   `bson:"description" json:"description"`
	ImageURLs   []string `bson:"image_urls" json:"imageUrls"`
	CreatedAt   int64    `bson:"created_at" json:"createdAt"`
	Pinned      bool     `bson:"pinned" json:"pinned"`
}

// BlogPost is a journal entry. Date is a free-text display string; CreatedAt
// (epoch milliseconds) is the structured sort key.
type BlogPost struct {
	ID        string   `bson:"_id,omitempty" json:"id"`
	Slug      string   `bson:"slug" json:"slug"`
	Title     string   `bson:"title" json:"title"`
	Date      string   `bson:"date" json:"date"`
	Content   string   `bson:"content" json:"content"`
	ImageURLs []string `bson:"image_urls" json:"imageUrls"`
	Author    string   `bson:"author" json:"author"`
	CreatedAt int64    `bson:"created_at" json:"createdAt"`
	Pinned    bool     `bson:"pinned" json:"pinned"`
}

type Subscriber struct {
	ID    string    `bson:"_id,omitempty" json:"id"`
	Email string    `bson:"email" json:"email"`
	Date  time.Time `bson:"date" json:"date"`
}

// SiteSettings is the singleton document holding all editable site copy and
// branding. Every field is typed so that adding one forces a compile-time
// update of the merge function below.
type SiteSettings struct {
	Navbar       NavbarSettings `bson:"navbar" json:"navbar"`
	Hero         HeroSettings   `bson:"hero" json:"hero"`
	Footer       FooterSettings `bson:"footer" json:"footer"`
	HomeSections HomeSections   `bson:"home_sections" json:"homeSections"`
	PageHeaders  PageHeaders    `bson:"page_headers" json:"pageHeaders"`
	Meta         MetaSettings   `bson:"meta" json:"meta"`
}

type NavbarSettings struct {
	Logo     string      `bson:"logo" json:"logo"`
	Subtitle string      `bson:"subtitle" json:"subtitle"`
	Links    NavbarLinks `bson:"links" json:"links"`
	Socials  SocialLinks `bson:"socials" json:"socials"`
}

type NavbarLinks struct {
	Home    string `bson:"home" json:"home"`
	Apparel string `bson:"apparel" json:"apparel"`
	Fibre   string `bson:"fibre" json:"fibre"`
	Visual  string `bson:"visual" json:"visual"`
	Journal string `bson:"journal" json:"journal"`
}

type SocialLinks struct {
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
	YouTube   string `bson:"youtube" json:"youtube"`
}

type HeroSettings struct {
	Tag         string `bson:"tag" json:"tag"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	ImageLeft   string `bson:"image_left" json:"imageLeft"`
	ImageRight  string `bson:"image_right" json:"imageRight"`
}

type FooterSettings struct {
	SubscribeTitle string `bson:"subscribe_title" json:"subscribeTitle"`
	ContactTag     string `bson:"contact_tag" json:"contactTag"`
	ContactEmail   string `bson:"contact_email" json:"contactEmail"`
}

type HomeSections struct {
	ApparelTitle string `bson:"apparel_title" json:"apparelTitle"`
	ApparelTag   string `bson:"apparel_tag" json:"apparelTag"`
	FibreTitle   string `bson:"fibre_title" json:"fibreTitle"`
	FibreTag     string `bson:"fibre_tag" json:"fibreTag"`
	VisualTitle  string `bson:"visual_title" json:"visualTitle"`
	VisualTag    string `bson:"visual_tag" json:"visualTag"`
	ArchiveTitle string `bson:"archive_title" json:"archiveTitle"`
	ArchiveTag   string `bson:"archive_tag" json:"archiveTag"`
}

// PageHeader is the optional title/subtitle pair shown above a listing page.
type PageHeader struct {
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
}

type PageHeaders struct {
	Apparel PageHeader `bson:"apparel" json:"apparel"`
	Fibre   PageHeader `bson:"fibre" json:"fibre"`
	Visual  PageHeader `bson:"visual" json:"visual"`
	Journal PageHeader `bson:"journal" json:"journal"`
}

type MetaSettings struct {
	TabTitle string `bson:"tab_title" json:"tabTitle"`
	Favicon  string `bson:"favicon" json:"favicon"`
}

// Credential is the single admin credential. The secret is stored bcrypt
// hashed; there is no recovery value. Never include this struct in an API
// response: the json tags exist for the snapshot tier only.
type Credential struct {
	PasswordHash string    `bson:"password_hash" json:"passwordHash"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
