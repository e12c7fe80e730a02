package render_test

import (
	"strings"
	"testing"

	"app/internal/catalog"
	"app/internal/domain/model"
	"app/internal/render"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGrid(t *testing.T) {
	html, err := render.ProductGrid(catalog.Default().All())
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Diamond Solitaire Ring")
	assert.Contains(t, s, "$1299.00")
	assert.Contains(t, s, `data-product-id="6"`)
	assert.Equal(t, 6, strings.Count(s, "product-card"))
}

func TestProductGrid_EscapesNames(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "<script>alert(1)</script>", Price: decimal.New(1, 0)},
	}

	html, err := render.ProductGrid(products)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>alert(1)</script>")
}

func TestCartPanel_Empty(t *testing.T) {
	html, err := render.CartPanel(usecase.CartView{Total: "$0.00"})
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Your cart is empty.")
	assert.Contains(t, s, "$0.00")
}

func TestCartPanel_WithItems(t *testing.T) {
	view := usecase.CartView{
		Items: []usecase.CartItemView{
			{ID: 2, Name: "Gold Filigree Necklace", Price: "$850.00", Image: "assets/necklace.png", Quantity: 3, Subtotal: "$2550.00"},
		},
		Total: "$2550.00",
		Count: 3,
	}

	html, err := render.CartPanel(view)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Gold Filigree Necklace")
	assert.Contains(t, s, `data-product-id="2"`)
	assert.Contains(t, s, `data-delta="-1"`)
	assert.Contains(t, s, `data-delta="1"`)
	assert.Contains(t, s, `<span class="cart-count">3</span>`)
	assert.NotContains(t, s, "Your cart is empty.")
}

// 同じ入力なら何度呼んでも同じmarkupになる
func TestCartPanel_Idempotent(t *testing.T) {
	view := usecase.CartView{
		Items: []usecase.CartItemView{{ID: 1, Name: "Ring", Price: "$1.00", Quantity: 1, Subtotal: "$1.00"}},
		Total: "$1.00",
		Count: 1,
	}

	a, err := render.CartPanel(view)
	require.NoError(t, err)
	b, err := render.CartPanel(view)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPage(t *testing.T) {
	notifications := []model.Notification{
		{ID: "n1", Message: "Item added to cart!", Kind: model.NotificationSuccess},
	}

	page, err := render.Page("Aurelia Jewelry", catalog.Default().All(),
		usecase.CartView{Total: "$0.00", PanelOpen: true}, notifications)
	require.NoError(t, err)

	assert.Contains(t, page, "<title>Aurelia Jewelry</title>")
	assert.Contains(t, page, `class="cart-active"`)
	assert.Contains(t, page, "notification success")
	assert.Contains(t, page, "Item added to cart!")
}
