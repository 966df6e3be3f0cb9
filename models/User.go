package models

import "time"

// User is an account record. Passwords are stored as-is and compared in full
// on every login; there is no session or token model in this application.
type User struct {
	Username     string     `json:"username"`
	Password     string     `json:"password"`
	ProfilePhoto *string    `json:"profile_photo"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin"`
	LastLogout   *time.Time `json:"lastLogout"`
	Role         string     `json:"role"` // admin, member

	// Optional contact links shown on the profile page.
	Whatsapp  *string `json:"whatsapp,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// ProfilePhotoURL resolves the avatar reference for display, falling back to
// the bundled placeholder when the user has no photo.
func (u User) ProfilePhotoURL() string {
	if u.ProfilePhoto != nil && *u.ProfilePhoto != "" {
		return "/uploads/" + *u.ProfilePhoto
	}
	return "default-avatar.png"
}
