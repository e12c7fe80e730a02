package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/catalog"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =====================
// テスト用の部品
// =====================

// 描画もDBも無しでカート一式を動かすためのメモリ保存
type memorySnapshotRepo struct {
	items []model.CartItem
	saved bool
}

func (m *memorySnapshotRepo) Load(ctx context.Context) ([]model.CartItem, error) {
	return m.items, nil
}

func (m *memorySnapshotRepo) Save(ctx context.Context, items []model.CartItem) error {
	m.items = items
	m.saved = true
	return nil
}

type testIDGen struct{ n int }

func (g *testIDGen) NewID() string {
	g.n++
	return "test-id"
}

type testClock struct{}

func (testClock) Now() time.Time { return time.Now() }

type fixture struct {
	e         *echo.Echo
	snapshots *memorySnapshotRepo
	notifier  *usecase.Notifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	snapshots := &memorySnapshotRepo{}
	notifier := usecase.NewNotifier(&testIDGen{}, testClock{}, 3*time.Second)
	cartUC := usecase.NewCartUsecase(catalog.Default(), snapshots, notifier, zap.NewNop())

	e := echo.New()
	handler.NewCartHandler(cartUC).RegisterRoutes(e)
	handler.NewNotificationHandler(notifier).RegisterRoutes(e)

	return &fixture{e: e, snapshots: snapshots, notifier: notifier}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) usecase.CartView {
	t.Helper()

	var view usecase.CartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

// =====================
// Tests
// =====================

func TestCartHandler_GetCart_Empty(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeView(t, rec)
	assert.Empty(t, view.Items)
	assert.Equal(t, "$0.00", view.Total)
}

func TestCartHandler_AddItem(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/cart/items", `{"product_id":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeView(t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(1), view.Items[0].ID)
	assert.Equal(t, "$1299.00", view.Total)
	assert.True(t, view.PanelOpen)

	//保存が走っている
	assert.True(t, f.snapshots.saved)
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/cart/items", `{"product_id":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "product not found")
}

func TestCartHandler_AddItem_InvalidBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/cart/items", `{"product_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/cart/items", `{"product_id":2}`)

	rec := f.do(t, http.MethodPatch, "/cart/items/2/quantity", `{"delta":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeView(t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(2), view.Items[0].Quantity)
	assert.Equal(t, "$1700.00", view.Total)
}

func TestCartHandler_UpdateQuantity_ZeroDelta(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPatch, "/cart/items/2/quantity", `{"delta":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/cart/items", `{"product_id":1}`)
	f.do(t, http.MethodPost, "/cart/items", `{"product_id":2}`)

	rec := f.do(t, http.MethodDelete, "/cart/items/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeView(t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(2), view.Items[0].ID)
}

func TestCartHandler_Toggle(t *testing.T) {
	f := newFixture(t)

	view := decodeView(t, f.do(t, http.MethodPost, "/cart/toggle", ""))
	assert.True(t, view.PanelOpen)

	view = decodeView(t, f.do(t, http.MethodPost, "/cart/toggle", ""))
	assert.False(t, view.PanelOpen)
}

func TestCartHandler_Checkout_Empty(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/checkout", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	//エラートーストが出て、カートは空のまま
	notifs := f.notifier.Active()
	require.Len(t, notifs, 1)
	assert.Equal(t, model.NotificationError, notifs[0].Kind)
	assert.False(t, f.snapshots.saved)
}

func TestCartHandler_Checkout_NonEmpty(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/cart/items", `{"product_id":1}`)

	rec := f.do(t, http.MethodPost, "/checkout", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeView(t, rec)
	assert.Empty(t, view.Items)
	assert.False(t, view.PanelOpen)
	assert.Empty(t, f.snapshots.items)
}

func TestNotificationHandler_List(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/cart/items", `{"product_id":3}`)

	rec := f.do(t, http.MethodGet, "/notifications", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item added to cart!")
}
