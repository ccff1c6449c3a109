package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/eventlog"
	"github.com/osse101/MeoFarm_Go/internal/farm"
	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// MoveCharacterRequest places the cat at an absolute position
type MoveCharacterRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// StepCharacterRequest moves the cat one step in a key's direction
type StepCharacterRequest struct {
	Key string `json:"key" validate:"required,max=32"`
}

// SelectToolRequest changes the active tool
type SelectToolRequest struct {
	Tool string `json:"tool" validate:"required,tool"`
}

// SelectCropRequest changes the crop used for planting
type SelectCropRequest struct {
	Emoji string `json:"emoji" validate:"required,crop"`
}

// PointRequest is a scene position in pixels
type PointRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// UpdatePlantRequest patches a plant. Omitted fields are left untouched.
type UpdatePlantRequest struct {
	Status *string  `json:"status,omitempty" validate:"omitempty,max=16"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

// SetTilesRequest replaces the whole soil grid
type SetTilesRequest struct {
	Tiles []domain.SoilTile `json:"tiles" validate:"required"`
}

// ResizeRequest reports a new viewport size
type ResizeRequest struct {
	Width  float64 `json:"width" validate:"gt=0,lte=16384"`
	Height float64 `json:"height" validate:"gt=0,lte=16384"`
}

// MoveCharacterResponse is the new position plus what the tool did there
type MoveCharacterResponse struct {
	Character domain.Character     `json:"character"`
	Proximity farm.ProximityResult `json:"proximity"`
}

// StepCharacterResponse is the position after a step
type StepCharacterResponse struct {
	Character domain.Character `json:"character"`
}

// SelectToolResponse echoes the normalized tool
type SelectToolResponse struct {
	Tool domain.Tool `json:"tool"`
}

// SelectCropResponse echoes the normalized crop
type SelectCropResponse struct {
	Emoji string `json:"emoji"`
}

// ClickResponse reports whether a click planted something
type ClickResponse struct {
	Planted bool          `json:"planted"`
	Plant   *domain.Plant `json:"plant,omitempty"`
}

// HarvestResponse reports the harvested plant, if any
type HarvestResponse struct {
	Applied bool          `json:"applied"`
	Plant   *domain.Plant `json:"plant,omitempty"`
}

// SetTilesResponse reports how many tiles are now in play
type SetTilesResponse struct {
	Tiles int `json:"tiles"`
}

// EventsResponse lists journal entries, newest first
type EventsResponse struct {
	Events []event.Event `json:"events"`
}

// FarmHandler handles farm state and command requests
type FarmHandler struct {
	farmSvc farm.Service
	journal eventlog.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service, journal eventlog.Service) *FarmHandler {
	return &FarmHandler{
		farmSvc: farmSvc,
		journal: journal,
	}
}

// RegisterRoutes mounts the farm endpoints on r
func (h *FarmHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleGetState)
	r.Get("/layout", h.HandleGetLayout)
	r.Get("/catalog", h.HandleGetCatalog)
	r.Get("/events", h.HandleGetEvents)

	r.Route("/character", func(r chi.Router) {
		r.Post("/move", h.HandleMoveCharacter)
		r.Post("/step", h.HandleStepCharacter)
	})
	r.Post("/tool", h.HandleSelectTool)
	r.Post("/crop", h.HandleSelectCrop)
	r.Post("/click", h.HandleClick)
	r.Post("/viewport", h.HandleResize)

	r.Route("/plants", func(r chi.Router) {
		r.Post("/", h.HandlePlant)
		r.Patch("/{id}", h.HandleUpdatePlant)
		r.Post("/{id}/harvest", h.HandleHarvest)
	})
	r.Route("/tiles", func(r chi.Router) {
		r.Put("/", h.HandleSetTiles)
		r.Patch("/{id}", h.HandleUpdateTile)
	})
}

// HandleGetState returns the full farm snapshot
// @Summary Get farm snapshot
// @Description Character, coins, plants with growth progress, tiles, tool and crop
// @Tags farm
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /api/v1/farm [get]
func (h *FarmHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.farmSvc.Snapshot(r.Context()))
}

// HandleGetLayout returns the scene geometry for the current viewport
// @Summary Get scene layout
// @Tags farm
// @Produce json
// @Success 200 {object} scene.Layout
// @Router /api/v1/farm/layout [get]
func (h *FarmHandler) HandleGetLayout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.farmSvc.Layout(r.Context()))
}

// HandleGetCatalog returns the toolbar and crop menu
// @Summary Get tool and crop catalog
// @Tags farm
// @Produce json
// @Success 200 {object} farm.Catalog
// @Router /api/v1/farm/catalog [get]
func (h *FarmHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.farmSvc.Catalog(r.Context()))
}

// HandleMoveCharacter places the cat and applies the active tool nearby
// @Summary Move character
// @Tags farm
// @Accept json
// @Produce json
// @Param request body MoveCharacterRequest true "Position"
// @Success 200 {object} MoveCharacterResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/character/move [post]
func (h *FarmHandler) HandleMoveCharacter(w http.ResponseWriter, r *http.Request) {
	var req MoveCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move character"); err != nil {
		return
	}

	result := h.farmSvc.MoveCharacter(r.Context(), *req.X, *req.Y)
	respondJSON(w, http.StatusOK, MoveCharacterResponse{
		Character: domain.Character{X: *req.X, Y: *req.Y},
		Proximity: result,
	})
}

// HandleStepCharacter moves the cat one step for a key press
// @Summary Step character
// @Description Keys are ArrowUp/ArrowDown/ArrowLeft/ArrowRight or w/a/s/d; the step is clamped to the scene
// @Tags farm
// @Accept json
// @Produce json
// @Param request body StepCharacterRequest true "Key"
// @Success 200 {object} StepCharacterResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm/character/step [post]
func (h *FarmHandler) HandleStepCharacter(w http.ResponseWriter, r *http.Request) {
	var req StepCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Step character"); err != nil {
		return
	}

	c, err := h.farmSvc.StepCharacter(r.Context(), req.Key)
	if err != nil {
		respondServiceError(w, r, "Step character", err)
		return
	}
	respondJSON(w, http.StatusOK, StepCharacterResponse{Character: c})
}

// HandleSelectTool changes the active tool
// @Summary Select tool
// @Tags farm
// @Accept json
// @Produce json
// @Param request body SelectToolRequest true "Tool"
// @Success 200 {object} SelectToolResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/tool [post]
func (h *FarmHandler) HandleSelectTool(w http.ResponseWriter, r *http.Request) {
	var req SelectToolRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select tool"); err != nil {
		return
	}

	tool, err := h.farmSvc.SelectTool(r.Context(), req.Tool)
	if err != nil {
		respondServiceError(w, r, "Select tool", err)
		return
	}
	logger.FromContext(r.Context()).Debug("Tool selected", "tool", tool)
	respondJSON(w, http.StatusOK, SelectToolResponse{Tool: tool})
}

// HandleSelectCrop changes the crop used for planting
// @Summary Select crop
// @Tags farm
// @Accept json
// @Produce json
// @Param request body SelectCropRequest true "Crop emoji"
// @Success 200 {object} SelectCropResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/crop [post]
func (h *FarmHandler) HandleSelectCrop(w http.ResponseWriter, r *http.Request) {
	var req SelectCropRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select crop"); err != nil {
		return
	}

	crop, err := h.farmSvc.SelectCrop(r.Context(), req.Emoji)
	if err != nil {
		respondServiceError(w, r, "Select crop", err)
		return
	}
	respondJSON(w, http.StatusOK, SelectCropResponse{Emoji: crop})
}

// HandleClick plants the selected crop on the tile under the pointer
// @Summary Click to plant
// @Description Plants only on an empty tile; otherwise planted is false
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PointRequest true "Pointer position"
// @Success 200 {object} ClickResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/click [post]
func (h *FarmHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	var req PointRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Click"); err != nil {
		return
	}

	plant, planted := h.farmSvc.ClickAt(r.Context(), *req.X, *req.Y)
	if !planted {
		respondJSON(w, http.StatusOK, ClickResponse{Planted: false})
		return
	}
	respondJSON(w, http.StatusOK, ClickResponse{Planted: true, Plant: &plant})
}

// HandlePlant plants the selected crop at an exact position
// @Summary Plant at position
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PointRequest true "Position"
// @Success 201 {object} domain.Plant
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/plants [post]
func (h *FarmHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	var req PointRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	respondJSON(w, http.StatusCreated, h.farmSvc.PlantAt(r.Context(), *req.X, *req.Y))
}

// HandleUpdatePlant patches a plant's status or position
// @Summary Update plant
// @Tags farm
// @Accept json
// @Produce json
// @Param id path string true "Plant id"
// @Param request body UpdatePlantRequest true "Patch"
// @Success 200 {object} AppliedResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm/plants/{id} [patch]
func (h *FarmHandler) HandleUpdatePlant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingPlantID)
		return
	}

	var req UpdatePlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update plant"); err != nil {
		return
	}
	if req.Status == nil && req.X == nil && req.Y == nil {
		respondError(w, http.StatusBadRequest, ErrMsgEmptyPatch)
		return
	}

	patch := domain.PlantPatch{X: req.X, Y: req.Y}
	if req.Status != nil {
		status, err := domain.ParsePlantStatus(*req.Status)
		if err != nil {
			respondServiceError(w, r, "Update plant", err)
			return
		}
		patch.Status = &status
	}

	applied := h.farmSvc.UpdatePlant(r.Context(), id, patch)
	respondJSON(w, http.StatusOK, AppliedResponse{Applied: applied})
}

// HandleHarvest removes a plant and pays the coin reward
// @Summary Harvest plant
// @Description Harvests regardless of growth status; unknown ids change nothing
// @Tags farm
// @Produce json
// @Param id path string true "Plant id"
// @Success 200 {object} HarvestResponse
// @Router /api/v1/farm/plants/{id}/harvest [post]
func (h *FarmHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingPlantID)
		return
	}

	plant, ok := h.farmSvc.Harvest(r.Context(), id)
	if !ok {
		respondJSON(w, http.StatusOK, HarvestResponse{Applied: false})
		return
	}
	respondJSON(w, http.StatusOK, HarvestResponse{Applied: true, Plant: &plant})
}

// HandleSetTiles replaces the whole soil grid
// @Summary Replace tiles
// @Tags farm
// @Accept json
// @Produce json
// @Param request body SetTilesRequest true "Tiles"
// @Success 200 {object} SetTilesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/tiles [put]
func (h *FarmHandler) HandleSetTiles(w http.ResponseWriter, r *http.Request) {
	var req SetTilesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set tiles"); err != nil {
		return
	}

	h.farmSvc.SetTiles(r.Context(), req.Tiles)
	respondJSON(w, http.StatusOK, SetTilesResponse{Tiles: len(req.Tiles)})
}

// HandleUpdateTile merges status flags into one tile
// @Summary Update tile status
// @Tags farm
// @Accept json
// @Produce json
// @Param id path string true "Tile id"
// @Param request body domain.TileStatusPatch true "Status flags"
// @Success 200 {object} AppliedResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm/tiles/{id} [patch]
func (h *FarmHandler) HandleUpdateTile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingTileID)
		return
	}

	var patch domain.TileStatusPatch
	if err := DecodeAndValidateRequest(r, w, &patch, "Update tile"); err != nil {
		return
	}
	if patch.IsEmpty() {
		respondError(w, http.StatusBadRequest, ErrMsgEmptyPatch)
		return
	}

	applied := h.farmSvc.SetTileStatus(r.Context(), id, patch)
	respondJSON(w, http.StatusOK, AppliedResponse{Applied: applied})
}

// HandleResize regenerates the soil for a new viewport and resets the character
// @Summary Resize viewport
// @Tags farm
// @Accept json
// @Produce json
// @Param request body ResizeRequest true "Viewport size"
// @Success 200 {object} scene.Layout
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/viewport [post]
func (h *FarmHandler) HandleResize(w http.ResponseWriter, r *http.Request) {
	var req ResizeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Resize"); err != nil {
		return
	}

	layout, err := h.farmSvc.Resize(r.Context(), req.Width, req.Height)
	if err != nil {
		respondServiceError(w, r, "Resize", err)
		return
	}
	respondJSON(w, http.StatusOK, layout)
}

// HandleGetEvents returns recent farm events from the journal
// @Summary Recent events
// @Tags farm
// @Produce json
// @Param types query string false "Comma separated event types"
// @Param limit query int false "Maximum events (default 50, max 500)"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm/events [get]
func (h *FarmHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, QueryParamLimit, DefaultEventsLimit, MaxEventsLimit)
	if !ok {
		return
	}

	events := h.journal.Recent(r.Context(), eventlog.Query{
		Types: GetListQueryParam(r, QueryParamTypes),
		Limit: limit,
	})
	respondJSON(w, http.StatusOK, EventsResponse{Events: events})
}
