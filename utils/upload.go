package utils

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Size limits matching the original upload configuration.
const (
	MaxChatFileSize = 50 * 1024 * 1024
	MaxPhotoSize    = 5 * 1024 * 1024
)

var (
	chatFileExts = map[string]bool{
		".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
		".mp4": true, ".webm": true, ".ogg": true, ".mov": true,
		".avi": true, ".wmv": true,
	}
	imageExts = map[string]bool{
		".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
	}
	videoExts = map[string]bool{
		".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	}
)

// AllowedChatFile accepts images and videos only, checking both the
// extension and the sniffed content type.
func AllowedChatFile(fh *multipart.FileHeader) bool {
	if !chatFileExts[headerExt(fh)] {
		return false
	}
	mt, err := detect(fh)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "image/") || strings.HasPrefix(mt, "video/")
}

// AllowedImageFile accepts images only (profile photos, portfolio and
// gallery uploads).
func AllowedImageFile(fh *multipart.FileHeader) bool {
	if !imageExts[headerExt(fh)] {
		return false
	}
	mt, err := detect(fh)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "image/")
}

// IsVideoPath classifies a stored file path as video by extension, used when
// listing the wallpaper directory.
func IsVideoPath(name string) bool {
	return videoExts[strings.ToLower(filepath.Ext(name))]
}

// UploadFilename builds the stored name for a form upload:
// <field>-<millis>-<random><ext>.
func UploadFilename(field, original string) string {
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), fileExt(original))
}

// TimestampFilename builds the stored name for wallpaper and photo uploads:
// <millis><ext>.
func TimestampFilename(original string) string {
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), fileExt(original))
}

func headerExt(fh *multipart.FileHeader) string {
	return strings.ToLower(filepath.Ext(fh.Filename))
}

func fileExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

func detect(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}
