package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bloom/internal/delivery/http/response"
	"bloom/internal/domain/entity"
	"bloom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type flowerView struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Cost  float64 `json:"cost"`
}

type addFlowerRequest struct {
	Name  string  `json:"name" form:"name" validate:"required"`
	Count *int    `json:"count" form:"count"`
	Cost  float64 `json:"cost" form:"cost" validate:"gte=0"`
}

// patchFlowerRequest uses pointer fields so "field absent" and "field set
// to zero" stay distinguishable.
type patchFlowerRequest struct {
	Name  *string  `json:"name" form:"name"`
	Count *int     `json:"count" form:"count"`
	Cost  *float64 `json:"cost" form:"cost"`
}

// FlowerHandler holds dependencies for catalog handlers.
type FlowerHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewFlowerHandler is the constructor for FlowerHandler, injected by Fx.
func NewFlowerHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *FlowerHandler {
	return &FlowerHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns a page of the catalog.
func (h *FlowerHandler) List(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	flowers, err := h.uc.ListFlowers(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]flowerView, 0, len(flowers))
	for _, flower := range flowers {
		views = append(views, toFlowerView(flower))
	}

	return response.Success(c, http.StatusOK, views, "Flowers retrieved successfully")
}

// Create adds a flower to the catalog.
func (h *FlowerHandler) Create(c echo.Context) error {
	var req addFlowerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flower input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	flower, err := h.uc.AddFlower(c.Request().Context(), &usecase.AddFlowerInput{
		Name:  req.Name,
		Count: req.Count,
		Cost:  req.Cost,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toFlowerView(flower), "Flower created successfully")
}

// Patch applies a partial update to a flower.
func (h *FlowerHandler) Patch(c echo.Context) error {
	flowerID, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid flower id")
	}

	var req patchFlowerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flower input")
	}

	flower, err := h.uc.UpdateFlower(c.Request().Context(), flowerID, &entity.FlowerPatch{
		Name:  req.Name,
		Count: req.Count,
		Cost:  req.Cost,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFlowerView(flower), "Flower updated successfully")
}

// Delete removes a flower from the catalog and returns the deleted item.
func (h *FlowerHandler) Delete(c echo.Context) error {
	flowerID, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid flower id")
	}

	flower, err := h.uc.DeleteFlower(c.Request().Context(), flowerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFlowerView(flower), "Flower deleted successfully")
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func toFlowerView(flower *entity.Flower) flowerView {
	return flowerView{
		ID:    flower.ID,
		Name:  flower.Name,
		Count: flower.Count,
		Cost:  flower.Cost,
	}
}
