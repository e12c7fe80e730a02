package usecase

import (
	"net/http"
	"strings"

	"app/internal/domain/model"

	"github.com/go-playground/validator/v10"
)

// お問い合わせフォーム。送信はしない（デモ）。
// 検証は元のフォームのmarkupが宣言的に課していた範囲（必須・email形式）だけ。
type ContactUsecase struct {
	notifier NotificationPort
	validate *validator.Validate
}

// DI
func NewContactUsecase(notifier NotificationPort) *ContactUsecase {
	return &ContactUsecase{
		notifier: notifier,
		validate: validator.New(),
	}
}

type ContactInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

// SubmitContact は検証して成功トーストを出すだけ。どこにも送信しない。
func (u *ContactUsecase) SubmitContact(in ContactInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if err := u.validate.Struct(in); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	u.notifier.Notify("Message sent successfully! We will contact you soon.", model.NotificationSuccess)
	return nil
}
