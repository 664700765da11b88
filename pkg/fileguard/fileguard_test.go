package fileguard_test

import (
	"testing"

	"github.com/subahan00/job-portal/pkg/fileguard"

	"github.com/stretchr/testify/assert"
)

var (
	pdfBytes  = []byte("%PDF-1.7 rest of document")
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}
	pngBytes  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	zipBytes  = []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00}
)

func TestValidateResume(t *testing.T) {
	t.Run("PDF with matching content and MIME passes", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileResume, "cv.pdf", pdfBytes, "application/pdf")
		assert.True(t, res.Valid)
		assert.Equal(t, ".pdf", res.Extension)
	})

	t.Run("Extension casing is normalized", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileResume, "CV.PDF", pdfBytes, "application/pdf")
		assert.True(t, res.Valid)
		assert.Equal(t, ".pdf", res.Extension)
	})

	t.Run("DOCX is a ZIP container and may sniff as octet-stream", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileResume, "cv.docx", zipBytes, "application/octet-stream")
		assert.True(t, res.Valid)
	})

	t.Run("Octet-stream is not tolerated for PDFs", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileResume, "cv.pdf", pdfBytes, "application/octet-stream")
		assert.False(t, res.Valid)
	})

	t.Run("Image extensions are rejected for resumes", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileResume, "cv.png", pngBytes, "image/png")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "extension not allowed")
	})

	t.Run("Renamed executable fails the magic byte check", func(t *testing.T) {
		elf := []byte{0x7F, 0x45, 0x4C, 0x46, 0x02, 0x01}
		res := fileguard.Validate(fileguard.ProfileResume, "cv.pdf", elf, "application/pdf")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "does not match extension")
	})

	t.Run("Missing extension is rejected", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileResume, "resume", pdfBytes, "application/pdf")
		assert.False(t, res.Valid)
	})
}

func TestValidateImage(t *testing.T) {
	t.Run("JPEG passes", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileImage, "me.jpg", jpegBytes, "image/jpeg")
		assert.True(t, res.Valid)
	})

	t.Run("PNG passes", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileImage, "me.png", pngBytes, "image/png")
		assert.True(t, res.Valid)
	})

	t.Run("PDF content behind an image extension is rejected", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileImage, "me.jpg", pdfBytes, "image/jpeg")
		assert.False(t, res.Valid)
	})

	t.Run("MIME outside the image whitelist is rejected", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileImage, "me.jpg", jpegBytes, "text/html")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "MIME type not allowed")
	})

	t.Run("Truncated files are rejected", func(t *testing.T) {
		res := fileguard.Validate(fileguard.ProfileImage, "me.jpg", []byte{0xFF}, "image/jpeg")
		assert.False(t, res.Valid)
	})
}

func TestAllowedExtensions(t *testing.T) {
	assert.ElementsMatch(t, []string{".pdf", ".doc", ".docx"}, fileguard.AllowedExtensions(fileguard.ProfileResume))
	assert.ElementsMatch(t, []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}, fileguard.AllowedExtensions(fileguard.ProfileImage))
}
