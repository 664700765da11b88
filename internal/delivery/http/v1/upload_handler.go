package v1

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
	"github.com/subahan00/job-portal/pkg/audit"
	"github.com/subahan00/job-portal/pkg/fileguard"
	"github.com/subahan00/job-portal/pkg/storage"
)

const maxImageDimension = 1024

type UploadHandler struct {
	store    storage.Store
	maxBytes int64
}

func NewUploadHandler(upload *gin.RouterGroup, store storage.Store, maxBytes int64) {
	handler := &UploadHandler{store: store, maxBytes: maxBytes}

	upload.POST("/resume", handler.Resume)
	upload.POST("/profile", handler.ProfileImage)
}

func (h *UploadHandler) readUpload(c *gin.Context, field string, profile fileguard.Profile) (string, []byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, "", apperror.BadRequest("No file uploaded in field '" + field + "'")
	}
	if fileHeader.Size > h.maxBytes {
		return "", nil, "", apperror.BadRequest(fmt.Sprintf("File exceeds the %d MB limit", h.maxBytes/(1<<20)))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, "", apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return "", nil, "", apperror.Internal(err)
	}
	if int64(len(data)) > h.maxBytes {
		return "", nil, "", apperror.BadRequest(fmt.Sprintf("File exceeds the %d MB limit", h.maxBytes/(1<<20)))
	}

	detected := http.DetectContentType(data)
	result := fileguard.Validate(profile, fileHeader.Filename, data, detected)
	if !result.Valid {
		h.auditReject(c, field, result.Error)
		return "", nil, "", apperror.BadRequest("Invalid file: " + result.Error)
	}

	return result.Extension, data, detected, nil
}

func (h *UploadHandler) auditReject(c *gin.Context, field, reason string) {
	audit.Record(audit.Event{
		Event:     audit.EventUploadRejected,
		Subject:   c.GetString(string(domain.KeyUserID)),
		IP:        c.ClientIP(),
		RequestID: c.GetString("RequestID"),
		Details:   map[string]interface{}{"field": field, "reason": reason},
	})
}

func uploadFilename(field, ext string) string {
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixNano(), uuid.NewString(), ext)
}

// Resume godoc
// @Summary      Upload a resume
// @Description  Accepts pdf, doc and docx in the multipart field "resume". The returned path is what the applicant profile's resume field references.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        resume  formData  file  true  "Resume file"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /upload/resume [post]
func (h *UploadHandler) Resume(c *gin.Context) {
	ext, data, contentType, err := h.readUpload(c, "resume", fileguard.ProfileResume)
	if err != nil {
		c.Error(err)
		return
	}

	filename := uploadFilename("resume", ext)
	path, err := h.store.Save(c.Request.Context(), "resume", filename, data, contentType)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "File uploaded successfully", gin.H{
		"filename": filename,
		"path":     path,
	})
}

// ProfileImage godoc
// @Summary      Upload a profile image
// @Description  Accepts jpeg, png, gif and webp in the multipart field "profile". Images over 1024px are downscaled and re-encoded as JPEG.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        profile  formData  file  true  "Profile image"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /upload/profile [post]
func (h *UploadHandler) ProfileImage(c *gin.Context) {
	ext, data, contentType, err := h.readUpload(c, "profile", fileguard.ProfileImage)
	if err != nil {
		c.Error(err)
		return
	}

	if resized, ok := downscaleImage(data, maxImageDimension, 80); ok {
		data = resized
		ext = ".jpg"
		contentType = "image/jpeg"
	}

	filename := uploadFilename("profile", ext)
	path, err := h.store.Save(c.Request.Context(), "profile", filename, data, contentType)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Profile image uploaded successfully", gin.H{
		"filename": filename,
		"path":     path,
	})
}

// downscaleImage re-encodes images whose larger side exceeds
// maxDimension as a JPEG of that size. Images already small enough, and
// anything that fails to decode, pass through untouched.
func downscaleImage(data []byte, maxDimension, quality int) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxDimension && height <= maxDimension {
		return nil, false
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
