package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CaCortez384/MiFestival/internal/api/middleware"
	"github.com/CaCortez384/MiFestival/internal/auth"
	"github.com/CaCortez384/MiFestival/internal/lineup"
	"github.com/CaCortez384/MiFestival/internal/models"
	"github.com/CaCortez384/MiFestival/internal/store"
	"github.com/CaCortez384/MiFestival/internal/utils"
)

// FestivalHandler covers festival CRUD and the read-only grid view.
type FestivalHandler struct {
	festivals store.FestivalStore
}

func NewFestivalHandler(festivals store.FestivalStore) *FestivalHandler {
	return &FestivalHandler{festivals: festivals}
}

func (h *FestivalHandler) CreateFestival(c *gin.Context) {
	var input struct {
		Name       string   `json:"name" binding:"required"`
		Days       int      `json:"days" binding:"required"`
		Stages     []string `json:"stages"`
		Background string   `json:"background"`
		StartDate  *string  `json:"start_date"` // "2006-01-02"
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Days < 1 || input.Days > lineup.MaxDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 30"})
		return
	}

	if len(input.Stages) == 0 {
		input.Stages = []string{"Escenario Principal"}
	}

	principal := middleware.PrincipalFrom(c)

	festival := models.Festival{
		Name:       input.Name,
		Slug:       utils.Slugify(input.Name),
		DayCount:   input.Days,
		Background: input.Background,
		OwnerID:    principal.OwnerID(),
	}
	festival.SetStageList(input.Stages)

	if input.StartDate != nil {
		start, err := time.Parse("2006-01-02", *input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		festival.StartDate = &start
	}

	if err := h.festivals.Create(c.Request.Context(), &festival); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create festival"})
		return
	}

	c.JSON(http.StatusCreated, festivalView(&festival))
}

func (h *FestivalHandler) GetFestival(c *gin.Context) {
	festival, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, festivalView(festival))
}

// GetGrid materializes the days × stages matrix for the view and edit
// pages.
func (h *FestivalHandler) GetGrid(c *gin.Context) {
	festival, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dias":       lineup.Days(festival.DayCount),
		"escenarios": festival.StageList(),
		"cells":      lineup.Grid(festival, festival.Artists),
	})
}

// MyFestivals lists the festivals owned by the signed-in user.
func (h *FestivalHandler) MyFestivals(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	festivales, err := h.festivals.ByOwner(c.Request.Context(), principal.OwnerID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch festivals"})
		return
	}

	out := make([]gin.H, 0, len(festivales))
	for i := range festivales {
		out = append(out, festivalView(&festivales[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// UpdateFestival applies single-field patches (name, days, background,
// start date). The frontend sends one per change, write-through, no
// batching.
func (h *FestivalHandler) UpdateFestival(c *gin.Context) {
	festival, ok := h.fetch(c)
	if !ok {
		return
	}

	principal := middleware.PrincipalFrom(c)
	if !auth.CanEdit(principal, festival) {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para editar este festival"})
		return
	}

	var input struct {
		Name       *string `json:"name"`
		Days       *int    `json:"days"`
		Background *string `json:"background"`
		StartDate  *string `json:"start_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
		fields["slug"] = utils.Slugify(*input.Name)
	}
	if input.Days != nil {
		if *input.Days < 1 || *input.Days > lineup.MaxDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 30"})
			return
		}
		fields["day_count"] = *input.Days
	}
	if input.Background != nil {
		fields["background"] = *input.Background
	}
	if input.StartDate != nil {
		start, err := time.Parse("2006-01-02", *input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		fields["start_date"] = start
	}
	if len(fields) == 0 {
		c.JSON(http.StatusOK, festivalView(festival))
		return
	}

	if err := h.festivals.UpdateFields(c.Request.Context(), festival.ID, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo completar la acción"})
		return
	}

	updated, err := h.festivals.Get(c.Request.Context(), festival.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo completar la acción"})
		return
	}
	c.JSON(http.StatusOK, festivalView(updated))
}

func (h *FestivalHandler) fetch(c *gin.Context) (*models.Festival, bool) {
	id, err := festivalID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid festival ID"})
		return nil, false
	}

	festival, err := h.festivals.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Festival no encontrado"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch festival"})
		return nil, false
	}
	return festival, true
}

func festivalID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

// festivalView is the wire shape shared by all festival responses: the
// CSV stage column goes out as an ordered list.
func festivalView(f *models.Festival) gin.H {
	view := gin.H{
		"id":         f.ID,
		"name":       f.Name,
		"slug":       f.Slug,
		"days":       f.DayCount,
		"stages":     f.StageList(),
		"background": f.Background,
		"owner_id":   f.OwnerID,
		"artistas":   f.Artists,
	}
	if f.StartDate != nil {
		view["start_date"] = f.StartDate.Format("2006-01-02")
	}
	return view
}
