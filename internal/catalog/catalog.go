package catalog

import (
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// Catalog は固定の商品一覧。起動時に作られ、以後変更しない。
type Catalog struct {
	products []model.Product
	byID     map[int64]model.Product
}

func New(products []model.Product) *Catalog {
	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// 定義順の全商品を返す。呼び出し側で変更しないこと。
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// IDで商品を引く。無ければ repo.ErrNotFound。
func (c *Catalog) FindByID(id int64) (model.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default はデモ用のジュエリー商品6点。
func Default() *Catalog {
	return New([]model.Product{
		{ID: 1, Name: "Diamond Solitaire Ring", Price: price("1299.00"), Image: "assets/ring.png", Category: "Rings"},
		{ID: 2, Name: "Gold Filigree Necklace", Price: price("850.00"), Image: "assets/necklace.png", Category: "Necklaces"},
		{ID: 3, Name: "Diamond Hoop Earrings", Price: price("599.00"), Image: "assets/earrings.png", Category: "Earrings"},
		{ID: 4, Name: "Hammered Gold Cuff", Price: price("450.00"), Image: "assets/bracelet.png", Category: "Bracelets"},
		{ID: 5, Name: "Vintage Gold Band", Price: price("320.00"), Image: "assets/ring.png", Category: "Rings"},
		{ID: 6, Name: "Pearl Drop Pendant", Price: price("675.00"), Image: "assets/necklace.png", Category: "Necklaces"},
	})
}
