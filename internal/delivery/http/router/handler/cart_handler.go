package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bloom/config"
	"bloom/internal/delivery/http/response"
	"bloom/internal/domain/cart"
	"bloom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type addCartItemRequest struct {
	FlowerID int64 `json:"flower_id" form:"flower_id" validate:"required"`
	// A nil quantity means "not provided" and defaults to one.
	Quantity *int `json:"quantity" form:"quantity"`
}

// CartHandler holds dependencies for cart handlers. It owns the cookie
// read/write; the cart's content semantics live in the domain and usecase
// layers.
type CartHandler struct {
	uc         usecase.CartUsecase
	cookieName string
	cookieTTL  time.Duration
	logger     *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, cfg *config.Config, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:         uc,
		cookieName: cfg.Cart.CookieName,
		cookieTTL:  cfg.Cart.TTL,
		logger:     logger,
	}
}

// AddItem validates and stores one cart entry, writing the updated cart
// back into the client cookie.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	items, err := h.uc.AddItem(c.Request().Context(), h.readCart(c), req.FlowerID, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	h.writeCart(c, items)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Flower added to cart"}, "Flower added to cart")
}

// GetItems resolves the cart cookie against the catalog and returns the
// lines plus total cost.
func (h *CartHandler) GetItems(c echo.Context) error {
	contents, err := h.uc.GetContents(c.Request().Context(), h.readCart(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contents, "Cart retrieved successfully")
}

// readCart reconstructs the cart from the request cookie. A missing or
// unreadable cookie yields an empty cart.
func (h *CartHandler) readCart(c echo.Context) cart.Cart {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil || cookie == nil {
		return cart.Cart{}
	}

	return cart.Decode(cookie.Value)
}

// writeCart stores the cart back into the response cookie, refreshing its
// expiry window.
func (h *CartHandler) writeCart(c echo.Context, items cart.Cart) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    items.Encode(),
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
	})
}
