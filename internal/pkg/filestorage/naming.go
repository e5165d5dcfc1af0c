package filestorage

import (
	"path"
	"strings"
)

const defaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"pptx": "application/vnd.ms-powerpoint",
	"ppt":  "application/vnd.ms-powerpoint",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
}

func isUnsafeNameChar(r rune) bool {
	switch r {
	case ' ', '#', '\'', '"', ':', ';', '|':
		return true
	}
	return false
}

// SanitizeFileName replaces characters that break object keys with an underscore.
// A run of adjacent unsafe characters collapses into a single underscore, so
// "My Notes #1: Final.pdf" becomes "My_Notes_1_Final.pdf".
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	inRun := false
	for _, r := range name {
		if isUnsafeNameChar(r) {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// ContentTypeFor derives the content type from the file extension
func ContentTypeFor(name string) string {
	ext := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = name[i+1:]
	}
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return defaultContentType
}

// ObjectKey joins a folder and a sanitized file name into a store key
func ObjectKey(folder, fileName string) string {
	return path.Join(folder, fileName)
}
