package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// スナップショットが保存されたことが無い（初回起動など）
var ErrNoSnapshot = errors.New("no snapshot")

// カート全体のスナップショットの永続化だけを約束。
// 固定キー1件に明細の配列をテキスト（JSON）で保存する。
type CartSnapshotRepository interface {
	// 保存済みスナップショットを読み込む。
	// 未保存なら ErrNoSnapshot を返す。
	Load(ctx context.Context) ([]model.CartItem, error)

	// 現在の明細をまるごと上書き保存する。
	Save(ctx context.Context, items []model.CartItem) error
}
