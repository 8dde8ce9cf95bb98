package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")

	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}

	return false
}

func IsImageFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedImageTypes)
}

// GenerateUniqueFilename keeps the extension and replaces the base name with
// a random uuid.
func GenerateUniqueFilename(originalFilename string) string {
	return uuid.NewString() + GetFileExtension(originalFilename)
}

func GetContentType(filename string) string {
	contentTypes := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
	}

	if contentType, exists := contentTypes[GetFileExtension(filename)]; exists {
		return contentType
	}

	return "application/octet-stream"
}
