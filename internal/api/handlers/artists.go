package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CaCortez384/MiFestival/internal/api/middleware"
	"github.com/CaCortez384/MiFestival/internal/auth"
	"github.com/CaCortez384/MiFestival/internal/lineup"
	"github.com/CaCortez384/MiFestival/internal/models"
	"github.com/CaCortez384/MiFestival/internal/store"
)

// ArtistHandler drives the assignment engine: roster additions, drag
// and drop moves, removals and the available pool.
type ArtistHandler struct {
	festivals store.FestivalStore
	db        *gorm.DB
}

func NewArtistHandler(festivals store.FestivalStore, db *gorm.DB) *ArtistHandler {
	return &ArtistHandler{festivals: festivals, db: db}
}

// artistPayload mirrors the frontend's artist object: the triple
// identifies the concrete rendered record being dragged or removed.
type artistPayload struct {
	Name  string  `json:"nombre" binding:"required"`
	Day   *string `json:"dia"`
	Stage *string `json:"escenario"`
}

func (p artistPayload) record() models.ArtistAssignment {
	return models.ArtistAssignment{Name: p.Name, Day: p.Day, Stage: p.Stage}
}

// AddArtist appends a manually typed name to the roster. An empty name
// is silently ignored — same guard the input box applies.
func (h *ArtistHandler) AddArtist(c *gin.Context) {
	festival, engine, ok := h.loadForEdit(c)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"nombre"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := engine.AddArtist(c.Request.Context(), input.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo completar la acción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"festival_id": festival.ID, "artistas": engine.Artists()})
}

// Assign drops the dragged artist onto a (day, stage) cell. The
// previous placement — identified by the full triple — is vacated in
// the same write.
func (h *ArtistHandler) Assign(c *gin.Context) {
	festival, engine, ok := h.loadForEdit(c)
	if !ok {
		return
	}

	var input struct {
		Artista artistPayload `json:"artista" binding:"required"`
		Day     string        `json:"dia" binding:"required"`
		Stage   string        `json:"escenario" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validSlot(festival, input.Day, input.Stage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot fuera de la grilla"})
		return
	}

	if err := engine.Assign(c.Request.Context(), input.Artista.record(), input.Day, input.Stage); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo completar la acción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"festival_id": festival.ID, "artistas": engine.Artists()})
}

// Unassign takes the artist off the grid but keeps the roster record.
func (h *ArtistHandler) Unassign(c *gin.Context) {
	festival, engine, ok := h.loadForEdit(c)
	if !ok {
		return
	}

	var input struct {
		Artista artistPayload `json:"artista" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := engine.Unassign(c.Request.Context(), input.Artista.record()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo completar la acción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"festival_id": festival.ID, "artistas": engine.Artists()})
}

// Remove deletes the record entirely. Directory candidates reappear in
// the pool on the next render; manual artists are gone.
func (h *ArtistHandler) Remove(c *gin.Context) {
	festival, engine, ok := h.loadForEdit(c)
	if !ok {
		return
	}

	var input struct {
		Artista artistPayload `json:"artista" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := engine.Remove(c.Request.Context(), input.Artista.record()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo completar la acción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"festival_id": festival.ID, "artistas": engine.Artists()})
}

// Pool serves the "Artistas disponibles" side panel: unassigned roster
// entries plus directory candidates, filtered by the search box.
func (h *ArtistHandler) Pool(c *gin.Context) {
	festival, _, ok := h.loadForEdit(c)
	if !ok {
		return
	}

	var candidates []models.CandidateArtist
	if err := h.db.Order("id asc").Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidates"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	pool := lineup.AvailablePool(festival.Artists, candidates)
	pool = lineup.FilterPool(pool, c.Query("q"), limit)

	c.JSON(http.StatusOK, gin.H{"data": pool})
}

// loadForEdit resolves the festival, enforces ownership and hydrates
// the engine from the persisted list.
func (h *ArtistHandler) loadForEdit(c *gin.Context) (*models.Festival, *lineup.Engine, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid festival ID"})
		return nil, nil, false
	}

	festival, err := h.festivals.Get(c.Request.Context(), uint(id))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Festival no encontrado"})
		return nil, nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch festival"})
		return nil, nil, false
	}

	principal := middleware.PrincipalFrom(c)
	if !auth.CanEdit(principal, festival) {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para editar este festival"})
		return nil, nil, false
	}

	engine := lineup.NewEngine(festival.ID, h.festivals, festival.Artists)
	return festival, engine, true
}

func validSlot(f *models.Festival, day, stage string) bool {
	dayOK := false
	for _, d := range lineup.Days(f.DayCount) {
		if d == day {
			dayOK = true
			break
		}
	}
	if !dayOK {
		return false
	}
	for _, s := range f.StageList() {
		if s == stage {
			return true
		}
	}
	return false
}
