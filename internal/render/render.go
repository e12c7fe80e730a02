package render

import (
	"bytes"
	"fmt"
	"html/template"

	"app/internal/domain/model"
	"app/internal/usecase"
)

// 商品グリッドとカートパネルの純粋な投影。
// 差分更新はせず、呼ばれるたびにコンテナの中身を丸ごと作り直す。

var gridTmpl = template.Must(template.New("grid").Parse(`{{range .}}<div class="product-card">
  <img src="{{.Image}}" alt="{{.Name}}" class="product-image">
  <div class="product-info">
    <span class="product-price">{{.DisplayPrice}}</span>
    <h3 class="product-title">{{.Name}}</h3>
    <button class="add-to-cart-btn" data-product-id="{{.ID}}">Add to Cart</button>
  </div>
</div>
{{end}}`))

var panelTmpl = template.Must(template.New("panel").Parse(`{{if not .Items}}<p class="cart-empty">Your cart is empty.</p>
{{else}}{{range .Items}}<div class="cart-item">
  <img src="{{.Image}}" alt="{{.Name}}">
  <div class="cart-item-details">
    <div class="cart-item-title">{{.Name}}</div>
    <div class="cart-item-price">{{.Price}}</div>
    <div class="cart-item-controls">
      <button class="quantity-btn" data-product-id="{{.ID}}" data-delta="-1">-</button>
      <span>{{.Quantity}}</span>
      <button class="quantity-btn" data-product-id="{{.ID}}" data-delta="1">+</button>
    </div>
  </div>
  <button class="remove-btn" data-product-id="{{.ID}}">Remove</button>
</div>
{{end}}{{end}}<div class="cart-total">{{.Total}}</div>
<span class="cart-count">{{.Count}}</span>`))

// ProductGrid はカタログを商品グリッドのmarkupに変換する
func ProductGrid(products []model.Product) (template.HTML, error) {
	var buf bytes.Buffer
	if err := gridTmpl.Execute(&buf, products); err != nil {
		return "", fmt.Errorf("render product grid: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// CartPanel はカートのビューをパネルのmarkupに変換する。
// 空なら定型の空メッセージと$0.00を出す。
func CartPanel(view usecase.CartView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := panelTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render cart panel: %w", err)
	}
	return template.HTML(buf.String()), nil
}
