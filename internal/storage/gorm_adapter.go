package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ohitslormee/baby-ess-tracker/internal/database/models"
	"github.com/ohitslormee/baby-ess-tracker/internal/domain"
)

// GormAdapter implements the inventory and child repositories on top of a
// gorm connection. Stock invariants are enforced in the database: barcode
// uniqueness via the unique index, the non-negative stock floor via
// conditional single-statement updates.
type GormAdapter struct {
	db *gorm.DB
}

func NewGormAdapter(db *gorm.DB) *GormAdapter {
	return &GormAdapter{db: db}
}

// -- Inventory --

func (a *GormAdapter) Insert(ctx context.Context, item *models.InventoryItem) error {
	if err := a.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateBarcode
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (a *GormAdapter) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := a.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query inventory item: %w", err)
	}
	return &item, nil
}

func (a *GormAdapter) GetByBarcode(ctx context.Context, barcode string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := a.db.WithContext(ctx).First(&item, "barcode = ?", barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query inventory item by barcode: %w", err)
	}
	return &item, nil
}

func (a *GormAdapter) List(ctx context.Context, limit int) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := a.db.WithContext(ctx).Order("created_at").Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

func (a *GormAdapter) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := a.db.WithContext(ctx).
		Where("current_stock <= min_stock_alert").
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return items, nil
}

func (a *GormAdapter) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.InventoryItem, error) {
	result := a.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("update inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return a.GetByID(ctx, id)
}

func (a *GormAdapter) AddStock(ctx context.Context, id string, quantity int) (*models.InventoryItem, error) {
	result := a.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_stock": gorm.Expr("current_stock + ?", quantity),
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("add stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return a.GetByID(ctx, id)
}

func (a *GormAdapter) ConsumeStock(ctx context.Context, id string, quantity int, entry *models.UsageLog) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		// Conditional decrement: the stock check and the write are one
		// statement, so two concurrent consumers cannot both pass the
		// check against the same stale read.
		result := tx.Model(&models.InventoryItem{}).
			Where("id = ? AND current_stock >= ?", id, quantity).
			Updates(map[string]interface{}{
				"current_stock": gorm.Expr("current_stock - ?", quantity),
				"updated_at":    now,
				"last_used":     now,
			})
		if result.Error != nil {
			return fmt.Errorf("consume stock: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.InventoryItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("probe inventory item: %w", err)
			}
			if count == 0 {
				return domain.ErrNotFound
			}
			return domain.ErrInsufficientStock
		}

		// Log append rides the same transaction as the decrement, so a
		// failed insert rolls the stock back instead of leaving the
		// ledger and the count disagreeing.
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("append usage log: %w", err)
		}
		return nil
	})
}

func (a *GormAdapter) ListUsageLogs(ctx context.Context, limit int) ([]models.UsageLog, error) {
	var logs []models.UsageLog
	if err := a.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list usage logs: %w", err)
	}
	return logs, nil
}

func (a *GormAdapter) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := a.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Select(
			"COUNT(*) AS total_items, " +
				"COUNT(*) FILTER (WHERE current_stock <= min_stock_alert) AS low_stock_items, " +
				"COUNT(*) FILTER (WHERE current_stock = 0) AS out_of_stock_items",
		).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}

// -- Children --

func (a *GormAdapter) InsertChild(ctx context.Context, child *models.Child) error {
	if err := a.db.WithContext(ctx).Create(child).Error; err != nil {
		return fmt.Errorf("insert child: %w", err)
	}
	return nil
}

func (a *GormAdapter) GetChildByID(ctx context.Context, id string) (*models.Child, error) {
	var child models.Child
	if err := a.db.WithContext(ctx).First(&child, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query child: %w", err)
	}
	return &child, nil
}

func (a *GormAdapter) ListChildren(ctx context.Context, limit int) ([]models.Child, error) {
	var children []models.Child
	if err := a.db.WithContext(ctx).Order("created_at").Limit(limit).Find(&children).Error; err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return children, nil
}

func (a *GormAdapter) UpdateChildFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Child, error) {
	result := a.db.WithContext(ctx).
		Model(&models.Child{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("update child: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return a.GetChildByID(ctx, id)
}

func (a *GormAdapter) DeleteChild(ctx context.Context, id string) error {
	result := a.db.WithContext(ctx).Delete(&models.Child{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete child: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
