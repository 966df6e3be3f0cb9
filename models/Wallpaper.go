package models

// Wallpaper points at the currently selected background. Both fields are
// null when no wallpaper has been set.
type Wallpaper struct {
	Path *string `json:"path"`
	Type *string `json:"type"`
}

// WallpaperFile describes one file available in the wallpaper directory.
type WallpaperFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"` // image or video
}
