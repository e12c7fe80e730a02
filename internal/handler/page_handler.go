package handler

import (
	"net/http"

	"app/internal/render"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ストアフロントのページ本体。グリッドとパネルをサーバ側で組み立てて返す。
type PageHandler struct {
	title    string
	products *usecase.ProductUsecase
	cart     *usecase.CartUsecase
	notifier *usecase.Notifier
}

// DI
func NewPageHandler(
	title string,
	products *usecase.ProductUsecase,
	cart *usecase.CartUsecase,
	notifier *usecase.Notifier,
) *PageHandler {
	return &PageHandler{
		title:    title,
		products: products,
		cart:     cart,
		notifier: notifier,
	}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
}

func (h *PageHandler) index(c echo.Context) error {
	page, err := render.Page(
		h.title,
		h.products.ListProducts().Items,
		h.cart.View(),
		h.notifier.Active(),
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.HTML(http.StatusOK, page)
}
