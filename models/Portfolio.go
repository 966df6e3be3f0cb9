package models

// Portfolio holds a user's free-form description plus their uploaded items.
type Portfolio struct {
	Description string          `json:"description"`
	Items       []PortfolioItem `json:"items"`
}

// PortfolioItem records one uploaded portfolio file.
type PortfolioItem struct {
	Type         string `json:"type"` // always "file" for uploads
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	MimeType     string `json:"mimetype"`
	URL          string `json:"url"`
}
