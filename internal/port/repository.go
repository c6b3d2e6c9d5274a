package port

import (
	"context"

	"github.com/ohitslormee/baby-ess-tracker/internal/database/models"
)

type InventoryRepository interface {
	// Insert persists a new item. Returns domain.ErrDuplicateBarcode when
	// the barcode unique index rejects the row.
	Insert(ctx context.Context, item *models.InventoryItem) error

	GetByID(ctx context.Context, id string) (*models.InventoryItem, error)
	GetByBarcode(ctx context.Context, barcode string) (*models.InventoryItem, error)
	List(ctx context.Context, limit int) ([]models.InventoryItem, error)

	// ListLowStock returns items with current_stock <= min_stock_alert,
	// boundary inclusive.
	ListLowStock(ctx context.Context) ([]models.InventoryItem, error)

	// UpdateFields applies only the given column values and returns the
	// refreshed item.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.InventoryItem, error)

	// AddStock increments current_stock atomically and returns the
	// refreshed item.
	AddStock(ctx context.Context, id string, quantity int) (*models.InventoryItem, error)

	// ConsumeStock decrements current_stock and appends the usage log in
	// one transaction. The decrement is conditional on sufficient stock;
	// on failure nothing is written and domain.ErrInsufficientStock (or
	// domain.ErrNotFound) is returned.
	ConsumeStock(ctx context.Context, id string, quantity int, entry *models.UsageLog) error

	ListUsageLogs(ctx context.Context, limit int) ([]models.UsageLog, error)

	// Stats counts total, low-stock and out-of-stock items in a single
	// aggregate query so the three counters describe one snapshot.
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type ChildRepository interface {
	InsertChild(ctx context.Context, child *models.Child) error
	GetChildByID(ctx context.Context, id string) (*models.Child, error)
	ListChildren(ctx context.Context, limit int) ([]models.Child, error)
	UpdateChildFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Child, error)
	DeleteChild(ctx context.Context, id string) error
}
