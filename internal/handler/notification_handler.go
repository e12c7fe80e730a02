package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /notificationsのHTTP。表示中のトーストを返すだけ。
type NotificationHandler struct {
	notifier *usecase.Notifier
}

// DI
func NewNotificationHandler(notifier *usecase.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

type NotificationListResponse struct {
	Items []model.Notification `json:"items"`
}

func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/notifications", h.list)
}

func (h *NotificationHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, NotificationListResponse{Items: h.notifier.Active()})
}
