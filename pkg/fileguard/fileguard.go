package fileguard

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Profile selects which whitelist applies to an upload.
type Profile string

const (
	// ProfileResume accepts PDF and Word documents.
	ProfileResume Profile = "resume"
	// ProfileImage accepts common web image formats.
	ProfileImage Profile = "image"
)

// Result carries the outcome of upload validation.
type Result struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// Magic byte signatures per extension. An extension maps to any of its
// possible prefixes.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},                           // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                                   // ZIP (PK..)
}

var profileExtensions = map[Profile]map[string]bool{
	ProfileResume: {
		".pdf":  true,
		".doc":  true,
		".docx": true,
	},
	ProfileImage: {
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	},
}

var profileMIMETypes = map[Profile]map[string]bool{
	ProfileResume: {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		// DOCX containers are plain ZIP to a sniffer.
		"application/zip": true,
	},
	ProfileImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	},
}

// Validate performs 3-layer upload validation against the given profile:
// 1. extension whitelist, 2. magic bytes match the extension, 3. detected
// MIME whitelist (application/octet-stream only tolerated for Word files,
// whose content was already verified by layer 2).
func Validate(profile Profile, filename string, data []byte, detectedMIME string) Result {
	result := Result{DetectedMIME: detectedMIME}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	allowed, ok := profileExtensions[profile]
	if !ok || !allowed[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !matchesMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	if detectedMIME == "application/octet-stream" {
		if ext != ".doc" && ext != ".docx" {
			result.Error = "file type could not be determined"
			return result
		}
	} else if !profileMIMETypes[profile][detectedMIME] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

func matchesMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// AllowedExtensions lists the extensions a profile accepts, for error
// messages.
func AllowedExtensions(profile Profile) []string {
	exts := make([]string, 0, len(profileExtensions[profile]))
	for ext := range profileExtensions[profile] {
		exts = append(exts, ext)
	}
	return exts
}
