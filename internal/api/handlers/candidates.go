package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CaCortez384/MiFestival/internal/models"
)

// CandidateHandler exposes the read-only artist directory plus the
// admin-only manual insert used when a name can't wait for the next
// CSV ingest.
type CandidateHandler struct {
	db *gorm.DB
}

func NewCandidateHandler(db *gorm.DB) *CandidateHandler {
	return &CandidateHandler{db: db}
}

func (h *CandidateHandler) GetCandidates(c *gin.Context) {
	var candidates []models.CandidateArtist
	if err := h.db.Order("id asc").Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": candidates})
}

func (h *CandidateHandler) AddCandidate(c *gin.Context) {
	var input struct {
		Name string `json:"nombre" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate := models.CandidateArtist{Name: input.Name}
	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&candidate).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add candidate"})
		return
	}

	c.JSON(http.StatusCreated, candidate)
}
