package dto

// BlogPost is the view model served to the marketing site.
// It is constructed fresh on every query, never persisted or cached.
// Field names mirror what the frontend consumes.
type BlogPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	PublishDate string `json:"publishDate"`
	Image       string `json:"image"`
	ReadTime    string `json:"readTime"`

	IsDownloadable bool   `json:"isDownloadable"`
	DownloadURL    string `json:"downloadUrl,omitempty"`
	Price          string `json:"price"`
}
