package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultAvatar is stored for users who register without an upload.
const DefaultAvatar = "default.jpg"

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

func AllowedImageExt(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// AvatarFilename builds a unique name for an uploaded avatar, keeping the
// original extension.
func AvatarFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("user_%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
}
