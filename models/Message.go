package models

import "time"

// Message is a single direct message between two users. Once stored it is
// immutable except for the Read flag, which the mark-read operation flips.
type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`

	// Set only when an attachment accompanied the message.
	FileURL  string `json:"fileUrl,omitempty"`
	FileType string `json:"fileType,omitempty"`
}

// Attachment carries the stored location and content type of an uploaded
// chat file. A nil *Attachment means the message is text-only.
type Attachment struct {
	FileURL  string `json:"fileUrl"`
	FileType string `json:"fileType"`
}
