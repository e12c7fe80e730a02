package model

import "github.com/shopspring/decimal"

// カタログの商品。起動時に定義され、実行中は不変。
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

// 表示用の価格（"$1299.00" 形式、2桁固定）
func (p Product) DisplayPrice() string {
	return "$" + p.Price.StringFixed(2)
}
