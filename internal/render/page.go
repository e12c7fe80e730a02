package render

import (
	"bytes"
	"fmt"
	"html/template"

	"app/internal/domain/model"
	"app/internal/usecase"
)

// ストアフロントのページ全体。グリッドとパネルを組み合わせる。
// ボタンはdata属性で商品IDを持ち、markup側にハンドラ名を埋め込まない。

type PageData struct {
	Title         string
	Grid          template.HTML
	Panel         template.HTML
	PanelOpen     bool
	Notifications []model.Notification
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="assets/style.css">
</head>
<body{{if .PanelOpen}} class="cart-active"{{end}}>
<header>
  <h1>{{.Title}}</h1>
  <button id="cart-toggle" class="cart-toggle-btn">Cart</button>
</header>
<main>
  <div id="product-grid">{{.Grid}}</div>
  <aside id="cart-sidebar">
    <div id="cart-items">{{.Panel}}</div>
    <button id="checkout-btn" class="checkout-btn">Checkout</button>
  </aside>
  <section id="contact">
    <form id="contact-form">
      <input name="name" placeholder="Name" required>
      <input name="email" type="email" placeholder="Email" required>
      <textarea name="message" placeholder="Message" required></textarea>
      <button type="submit">Send</button>
    </form>
  </section>
</main>
<div id="notification-container">{{range .Notifications}}<div class="notification {{.Kind}}">
  <div class="notification-message">{{.Message}}</div>
</div>
{{end}}</div>
<script src="assets/app.js"></script>
</body>
</html>
`))

// Page はストアフロント全体のHTMLを組み立てる
func Page(title string, products []model.Product, view usecase.CartView, notifications []model.Notification) (string, error) {
	grid, err := ProductGrid(products)
	if err != nil {
		return "", err
	}

	panel, err := CartPanel(view)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, PageData{
		Title:         title,
		Grid:          grid,
		Panel:         panel,
		PanelOpen:     view.PanelOpen,
		Notifications: notifications,
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}
