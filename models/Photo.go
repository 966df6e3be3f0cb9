package models

// Photo is a gallery upload with its description sidecar text file.
type Photo struct {
	ID           int    `json:"id"`
	Filename     string `json:"filename"`
	TextFilename string `json:"textFilename"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	Path         string `json:"path"`
	TextPath     string `json:"textPath"`
}
