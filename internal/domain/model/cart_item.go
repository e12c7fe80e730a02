package model

import "github.com/shopspring/decimal"

// カートの明細。商品のフィールド＋数量。
// 同一商品の明細は常に1つで、quantityは必ず1以上。
type CartItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
}

// 商品から数量1の明細を作る
func NewCartItem(p Product) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
		Quantity: 1,
	}
}

// 明細の小計（price * quantity）
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// 表示用の単価
func (i CartItem) DisplayPrice() string {
	return "$" + i.Price.StringFixed(2)
}
