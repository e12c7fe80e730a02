package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 固定キー。ブラウザ保存の 'cart' キーに対応する。
const snapshotKey = "cart"

// cart_snapshotsの1行。keyごとに明細配列をJSONテキストで持つ。
type cartSnapshotRow struct {
	Key       string    `gorm:"primaryKey;type:varchar(64);column:key"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (cartSnapshotRow) TableName() string {
	return "cart_snapshots"
}

type CartSnapshotGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartSnapshotGormRepository(db *gorm.DB) *CartSnapshotGormRepository {
	return &CartSnapshotGormRepository{db: db}
}

// テーブルを作成する（起動時に呼ぶ）
func (r *CartSnapshotGormRepository) Migrate() error {
	return r.db.AutoMigrate(&cartSnapshotRow{})
}

// 保存済みスナップショットを読み込む
func (r *CartSnapshotGormRepository) Load(ctx context.Context) ([]model.CartItem, error) {
	var row cartSnapshotRow

	err := r.db.WithContext(ctx).
		Where("key = ?", snapshotKey).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(row.Payload), &items); err != nil {
		//壊れたJSONはエラーで返す（呼び出し側が警告して空で始める）
		return nil, fmt.Errorf("parse cart snapshot: %w", err)
	}
	return items, nil
}

// 現在の明細をまるごと上書き保存する
func (r *CartSnapshotGormRepository) Save(ctx context.Context, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	row := cartSnapshotRow{
		Key:       snapshotKey,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}

	//同一キーはUPSERT
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}
