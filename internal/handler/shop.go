package handler

import (
	"github.com/deppfellow/go-shops/internal/model"
	"github.com/deppfellow/go-shops/internal/server"
	"github.com/deppfellow/go-shops/internal/service"
	"github.com/deppfellow/go-shops/internal/validation"
	"github.com/labstack/echo/v4"
)

// ShopDeletedMessage is the body message of a successful delete.
const ShopDeletedMessage = "Shop deleted"

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ShopList is the GET /shops body.
type ShopList []model.Shop

func (l ShopList) Len() int { return len(l) }

// CreateShopRequest is validated against validation.ShopBody.
type CreateShopRequest struct {
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Price       *model.Price `json:"price"`
}

func (r *CreateShopRequest) Schemas() (validation.Schema, validation.Schema) {
	return validation.ShopBody, nil
}

func (r *CreateShopRequest) input() model.ShopInput {
	return model.ShopInput{Title: r.Title, Description: r.Description, Price: r.Price}
}

type ListShopsRequest struct{}

func (r *ListShopsRequest) Schemas() (validation.Schema, validation.Schema) {
	return nil, nil
}

// GetShopRequest requires a UUID path id.
type GetShopRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *GetShopRequest) Schemas() (validation.Schema, validation.Schema) {
	return nil, validation.ShopIDParam
}

// ReplaceShopRequest is not schema-checked; omitted fields clear the
// stored values.
type ReplaceShopRequest struct {
	ID          string       `param:"id" json:"-"`
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Price       *model.Price `json:"price"`
}

func (r *ReplaceShopRequest) Schemas() (validation.Schema, validation.Schema) {
	return nil, nil
}

func (r *ReplaceShopRequest) input() model.ShopInput {
	input := model.ShopInput{Description: r.Description, Price: r.Price}
	if r.Title != nil {
		input.Title = *r.Title
	}
	return input
}

type DeleteShopRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *DeleteShopRequest) Schemas() (validation.Schema, validation.Schema) {
	return nil, nil
}

// ShopHandler serves the /shops resource.
type ShopHandler struct {
	Handler
	shops *service.ShopService
}

func NewShopHandler(s *server.Server, shops *service.ShopService) *ShopHandler {
	return &ShopHandler{
		Handler: NewHandler(s),
		shops:   shops,
	}
}

func (h *ShopHandler) CreateShop(c echo.Context, req *CreateShopRequest) (model.Shop, error) {
	return h.shops.Create(c.Request().Context(), req.input())
}

func (h *ShopHandler) ListShops(c echo.Context, _ *ListShopsRequest) (ShopList, error) {
	shops, err := h.shops.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return ShopList(shops), nil
}

func (h *ShopHandler) GetShop(c echo.Context, req *GetShopRequest) (model.Shop, error) {
	return h.shops.Get(c.Request().Context(), req.ID)
}

func (h *ShopHandler) ReplaceShop(c echo.Context, req *ReplaceShopRequest) (model.Shop, error) {
	return h.shops.Replace(c.Request().Context(), req.ID, req.input())
}

func (h *ShopHandler) DeleteShop(c echo.Context, req *DeleteShopRequest) (MessageResponse, error) {
	if err := h.shops.Delete(c.Request().Context(), req.ID); err != nil {
		return MessageResponse{}, err
	}
	return MessageResponse{Message: ShopDeletedMessage}, nil
}
