package usecase

import (
	"context"
	"net/http"
	"sync"

	"app/internal/catalog"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartUsecase はカート本体。明細の順序付きリストとパネルの開閉状態を持つ。
// HTTPハンドラが並行に呼ぶのでmutexで直列化する。
// 変更が成功するたびに同期的にスナップショットを保存してから結果を返す。
type CartUsecase struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	snapshots repo.CartSnapshotRepository
	notifier  NotificationPort
	log       *zap.Logger

	items     []model.CartItem
	panelOpen bool
}

// DI
func NewCartUsecase(
	c *catalog.Catalog,
	snapshots repo.CartSnapshotRepository,
	notifier NotificationPort,
	log *zap.Logger,
) *CartUsecase {
	return &CartUsecase{
		catalog:   c,
		snapshots: snapshots,
		notifier:  notifier,
		log:       log,
	}
}

// CartItemView はAPIとテンプレートが使う明細ビュー。
type CartItemView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int64  `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// CartView はカート全体のビュー（明細・合計・個数・パネル状態）。
type CartView struct {
	Items     []CartItemView `json:"items"`
	Total     string         `json:"total"`
	Count     int64          `json:"count"`
	PanelOpen bool           `json:"panel_open"`
}

// Restore は起動時に保存済みスナップショットからカートを復元する。
// 未保存なら空で始める。壊れていた場合は警告を出して空で始める（握り潰さない）。
func (u *CartUsecase) Restore(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.snapshots.Load(ctx)
	if err == repo.ErrNoSnapshot {
		u.items = nil
		return
	}
	if err != nil {
		u.log.Warn("cart snapshot unreadable, starting empty", zap.Error(err))
		u.items = nil
		return
	}

	u.items = sanitizeItems(items, u.log)
}

// 復元した明細を不変条件（数量1以上・同一IDは1件）に合わせて整える。
func sanitizeItems(items []model.CartItem, log *zap.Logger) []model.CartItem {
	seen := make(map[int64]bool, len(items))
	out := make([]model.CartItem, 0, len(items))

	for _, it := range items {
		if it.Quantity < 1 {
			log.Warn("dropping persisted line item with invalid quantity",
				zap.Int64("product_id", it.ID), zap.Int64("quantity", it.Quantity))
			continue
		}
		if seen[it.ID] {
			log.Warn("dropping duplicate persisted line item", zap.Int64("product_id", it.ID))
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}

// View は現在のカートのビューを返す
func (u *CartUsecase) View() CartView {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.buildView()
}

// AddToCart は商品をカートに追加する（同一商品は数量+1）。
// カタログに無いIDは404。追加成功で通知を出し、閉じていればパネルを開く。
func (u *CartUsecase) AddToCart(ctx context.Context, productID int64) (CartView, error) {
	if productID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.catalog.FindByID(productID)
	if err == repo.ErrNotFound {
		return CartView{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	next := cloneItems(u.items)
	if idx := findItem(next, productID); idx >= 0 {
		next[idx].Quantity++
	} else {
		//新しい明細は末尾に追加（挿入順を保つ）
		next = append(next, model.NewCartItem(p))
	}

	if err := u.commit(ctx, next); err != nil {
		return CartView{}, err
	}

	u.notifier.Notify("Item added to cart!", model.NotificationSuccess)

	//追加時はパネルを開く
	u.panelOpen = true

	return u.buildView(), nil
}

// RemoveFromCart は明細を削除する。該当が無ければ何もしない。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, productID int64) (CartView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := findItem(u.items, productID)
	if idx < 0 {
		u.log.Debug("remove ignored, product not in cart", zap.Int64("product_id", productID))
		return u.buildView(), nil
	}

	next := cloneItems(u.items)
	next = append(next[:idx], next[idx+1:]...)

	if err := u.commit(ctx, next); err != nil {
		return CartView{}, err
	}
	return u.buildView(), nil
}

// UpdateQuantity は数量をdeltaぶん増減する。結果が0以下になったら明細ごと削除。
// 該当が無ければ何もしない。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, productID int64, delta int64) (CartView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := findItem(u.items, productID)
	if idx < 0 {
		u.log.Debug("quantity update ignored, product not in cart", zap.Int64("product_id", productID))
		return u.buildView(), nil
	}

	next := cloneItems(u.items)
	next[idx].Quantity += delta

	if next[idx].Quantity <= 0 {
		//0以下はクランプせず明細ごと消す
		next = append(next[:idx], next[idx+1:]...)
	}

	if err := u.commit(ctx, next); err != nil {
		return CartView{}, err
	}
	return u.buildView(), nil
}

// Clear はカートを空にして保存する。通知やパネル操作はしない。
func (u *CartUsecase) Clear(ctx context.Context) (CartView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.commit(ctx, []model.CartItem{}); err != nil {
		return CartView{}, err
	}
	return u.buildView(), nil
}

// ToggleCart はパネルの開閉を反転する。カート内容は変えないので保存しない。
func (u *CartUsecase) ToggleCart() CartView {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.panelOpen = !u.panelOpen
	return u.buildView()
}

// Checkout はデモの購入処理。
// 空ならエラートーストだけ出して何も変えない（パネルも閉じない）。
// 入っていれば成功トーストを出し、カートを空にして保存し、パネルを閉じる。
func (u *CartUsecase) Checkout(ctx context.Context) (CartView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.items) == 0 {
		u.notifier.Notify("Your cart is empty!", model.NotificationError)
		return u.buildView(), nil
	}

	if err := u.commit(ctx, []model.CartItem{}); err != nil {
		return CartView{}, err
	}

	u.notifier.Notify("Thank you for your purchase! This is a demo.", model.NotificationSuccess)
	u.panelOpen = false

	return u.buildView(), nil
}

// TotalCount は全明細の数量合計
func (u *CartUsecase) TotalCount() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return totalCount(u.items)
}

// TotalPrice は合計金額の表示文字列（"$2598.00" 形式）
func (u *CartUsecase) TotalPrice() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return "$" + totalPrice(u.items).StringFixed(2)
}

// commit は新しい明細を保存してから内部状態に反映する。
// 保存が先、反映が後。保存に失敗したらカートは変わらない。
func (u *CartUsecase) commit(ctx context.Context, next []model.CartItem) error {
	if err := u.snapshots.Save(ctx, next); err != nil {
		u.log.Error("cart snapshot save failed", zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	u.items = next
	return nil
}

func (u *CartUsecase) buildView() CartView {
	items := make([]CartItemView, 0, len(u.items))
	for _, it := range u.items {
		items = append(items, CartItemView{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.DisplayPrice(),
			Image:    it.Image,
			Quantity: it.Quantity,
			Subtotal: "$" + it.Subtotal().StringFixed(2),
		})
	}

	return CartView{
		Items:     items,
		Total:     "$" + totalPrice(u.items).StringFixed(2),
		Count:     totalCount(u.items),
		PanelOpen: u.panelOpen,
	}
}

func findItem(items []model.CartItem, productID int64) int {
	for i, it := range items {
		if it.ID == productID {
			return i
		}
	}
	return -1
}

func cloneItems(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}

func totalCount(items []model.CartItem) int64 {
	var n int64
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func totalPrice(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
