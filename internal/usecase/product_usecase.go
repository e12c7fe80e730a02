package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"app/internal/catalog"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// カタログの読み取りだけを提供する。商品は不変なので書き込み系は無い。
type ProductUsecase struct {
	catalog *catalog.Catalog
}

// DI
func NewProductUsecase(c *catalog.Catalog) *ProductUsecase {
	return &ProductUsecase{catalog: c}
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

func (u *ProductUsecase) ListProducts() ProductListOutput {
	items := u.catalog.All()
	return ProductListOutput{Items: items, Total: len(items)}
}

func (u *ProductUsecase) GetProductDetail(productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.catalog.FindByID(productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return p, nil
}
