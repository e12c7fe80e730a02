package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	appmw "app/internal/middleware"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Page         *handler.PageHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Contact      *handler.ContactHandler
	Notification *handler.NotificationHandler
}

// New はechoを組み立てて返す（起動はしない）。テストからも使う。
func New(log *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(appmw.RequestLogger(log))

	RegisterRoutes(e, h)
	return e
}

// Start はサーバを起動する。
func Start(addr string, log *zap.Logger, h Handlers) error {
	return New(log, h).Start(addr)
}
