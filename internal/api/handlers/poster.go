package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CaCortez384/MiFestival/internal/api/middleware"
	"github.com/CaCortez384/MiFestival/internal/auth"
	"github.com/CaCortez384/MiFestival/internal/lineup"
	"github.com/CaCortez384/MiFestival/internal/store"
	"github.com/CaCortez384/MiFestival/internal/storage"
)

// PosterHandler serves the poster layout and receives the rendered
// image from the client-side render-to-file step for sharing.
type PosterHandler struct {
	festivals store.FestivalStore
	storage   *storage.Client
}

func NewPosterHandler(festivals store.FestivalStore, storage *storage.Client) *PosterHandler {
	return &PosterHandler{festivals: festivals, storage: storage}
}

// GetPoster returns the structured layout: per-day headliner and
// supporting bands. Rasterization happens client side.
func (h *PosterHandler) GetPoster(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid festival ID"})
		return
	}

	festival, err := h.festivals.Get(c.Request.Context(), uint(id))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Festival no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch festival"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":       festival.Name,
		"background": festival.Background,
		"dias":       lineup.Layout(festival, festival.Artists, time.Now()),
	})
}

// UploadPoster stores the rendered poster image in the assets area and
// returns its key for sharing.
func (h *PosterHandler) UploadPoster(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid festival ID"})
		return
	}

	festival, err := h.festivals.Get(c.Request.Context(), uint(id))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Festival no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch festival"})
		return
	}

	principal := middleware.PrincipalFrom(c)
	if !auth.CanEdit(principal, festival) {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para editar este festival"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("posters/%s-%d-%d.png", festival.Slug, festival.ID, time.Now().Unix())
	if err := h.storage.UploadPosterFile(key, file, "image/png"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo completar la acción"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key})
}
