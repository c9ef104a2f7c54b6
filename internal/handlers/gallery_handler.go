package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/httpresp"
	"github.com/zlatne-makaze/barbershop-api/internal/media"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
)

const maxUploadBytes = 10 << 20

// ======================================================
// HANDLER
// ======================================================

type GalleryHandler struct {
	db    *gorm.DB
	store *media.S3Store
}

func NewGalleryHandler(db *gorm.DB, store *media.S3Store) *GalleryHandler {
	return &GalleryHandler{db: db, store: store}
}

// ======================================================
// LIST (public)
// ======================================================

func (h *GalleryHandler) List(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.
		Where("visible = true").
		Order("id DESC").
		Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Could not load the gallery.")
		return
	}

	httpresp.List(c, images)
}

// ======================================================
// UPLOAD (admin)
// ======================================================

func (h *GalleryHandler) Upload(c *gin.Context) {
	if h.store == nil {
		httperr.Unavailable(c, "gallery_disabled", "Image storage is not configured.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the 10MB limit.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the uploaded file.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the uploaded file.")
		return
	}

	encoded, width, height, err := media.ProcessImage(raw)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "File is not a valid JPEG or PNG image.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Could not process the image.")
		return
	}

	key := fmt.Sprintf("gallery/%s.webp", uuid.NewString())

	if err := h.store.Put(c.Request.Context(), key, encoded, "image/webp"); err != nil {
		httperr.Internal(c, "failed_to_store_image", "Could not store the image.")
		return
	}

	img := models.GalleryImage{
		Key:     key,
		Title:   c.PostForm("title"),
		URL:     h.store.URL(key),
		Width:   width,
		Height:  height,
		Visible: true,
	}

	if err := h.db.Create(&img).Error; err != nil {
		// keep the bucket consistent with the database
		_ = h.store.Delete(c.Request.Context(), key)
		httperr.Internal(c, "failed_to_save_image", "Could not save the image.")
		return
	}

	c.JSON(http.StatusCreated, img)
}

// ======================================================
// DELETE (admin)
// ======================================================

func (h *GalleryHandler) Delete(c *gin.Context) {
	if h.store == nil {
		httperr.Unavailable(c, "gallery_disabled", "Image storage is not configured.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_image_id", "Invalid image.")
		return
	}

	var img models.GalleryImage
	if err := h.db.First(&img, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "image_not_found", "Image not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_image", "Could not load the image.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), img.Key); err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Could not delete the image from storage.")
		return
	}

	if err := h.db.Delete(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Could not delete the image.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
