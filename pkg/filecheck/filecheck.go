package filecheck

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// Magic byte signatures for allowed upload types, keyed by lowercase
// extension. An empty signature list means the type has no magic bytes.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},                           // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                                   // ZIP (PK..)
	".txt":  {},
	".mp4":  {},
	".webm": {{0x1A, 0x45, 0xDF, 0xA3}}, // EBML header
}

// Extension whitelist covering the asset classes candidates attach:
// resumes, cover letters, photos, intro videos.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".mp4":  true,
	".webm": true,
}

// Strict MIME whitelist. application/octet-stream is rejected except for
// formats the sniffer cannot name.
var strictMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain":      true,
	"application/zip": true,
	"video/mp4":       true,
	"video/webm":      true,
}

// Validate runs the 3-layer upload check: extension whitelist, magic byte
// verification, MIME whitelist. detectedMIME should come from
// http.DetectContentType over the payload head.
func Validate(filename string, data []byte, detectedMIME string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}

	if !allowedExtensions[ext] {
		return errors.New("file extension not allowed: " + ext)
	}

	if len(magicBytes[ext]) > 0 && !matchesMagicBytes(ext, data) {
		return errors.New("file content does not match extension")
	}

	if detectedMIME == "application/octet-stream" {
		// .docx/.doc/.mp4 are often sniffed as octet-stream; the magic
		// byte layer has already vouched for them.
		if ext == ".docx" || ext == ".doc" || ext == ".mp4" {
			return nil
		}
		return errors.New("binary files not allowed; file type could not be determined")
	}

	base := detectedMIME
	if i := strings.Index(base, ";"); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	if !strictMIMETypes[base] {
		return errors.New("MIME type not allowed: " + base)
	}

	return nil
}

func matchesMagicBytes(ext string, data []byte) bool {
	signatures := magicBytes[ext]
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// IsImage reports whether the filename carries an image extension.
func IsImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif" || ext == ".webp"
}
