// Package mediatype classifies files as photo or video by extension.
// The match is on the extension only; content is never sniffed.
package mediatype

import (
	"path/filepath"
	"strings"
)

// Kind is the classification result.
type Kind string

const (
	KindPhoto       Kind = "photo"
	KindVideo       Kind = "video"
	KindUnsupported Kind = "unsupported"
)

var photoExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true,
	"webp": true, "bmp": true, "tiff": true,
}

var videoExtensions = map[string]bool{
	"mp4": true, "avi": true, "mov": true, "wmv": true,
	"flv": true, "webm": true, "mkv": true,
}

// Classify maps a filename to its media kind. Case-insensitive.
// Unrecognized extensions map to KindUnsupported; the caller decides to skip.
func Classify(filename string) Kind {
	return ClassifyExt(Ext(filename))
}

// ClassifyExt classifies a bare extension (without the leading dot).
func ClassifyExt(ext string) Kind {
	ext = strings.ToLower(ext)
	switch {
	case photoExtensions[ext]:
		return KindPhoto
	case videoExtensions[ext]:
		return KindVideo
	default:
		return KindUnsupported
	}
}

// Ext returns the lowercased extension of filename without the dot.
func Ext(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
