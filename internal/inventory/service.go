// Package inventory owns the stock invariants: creation with
// uniqueness-by-barcode, stock adjustment, low-stock detection and dashboard
// aggregation.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ohitslormee/baby-ess-tracker/internal/classifier"
	"github.com/ohitslormee/baby-ess-tracker/internal/database/models"
	"github.com/ohitslormee/baby-ess-tracker/internal/domain"
	"github.com/ohitslormee/baby-ess-tracker/internal/port"
)

const (
	listLimit        = 1000
	defaultLogsLimit = 100
	maxLogsLimit     = 1000
)

type Service struct {
	repo port.InventoryRepository
}

func NewService(repo port.InventoryRepository) *Service {
	return &Service{repo: repo}
}

type CreateItemInput struct {
	Barcode       string  `json:"barcode"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	CurrentStock  int     `json:"current_stock"`
	MinStockAlert *int    `json:"min_stock_alert"`
	UnitType      string  `json:"unit_type"`
	Brand         *string `json:"brand"`
	Size          *string `json:"size"`
}

// ItemPatch carries a partial update: only non-nil fields are applied.
type ItemPatch struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	CurrentStock  *int    `json:"current_stock"`
	MinStockAlert *int    `json:"min_stock_alert"`
	UnitType      *string `json:"unit_type"`
	Brand         *string `json:"brand"`
	Size          *string `json:"size"`
}

func (s *Service) Create(ctx context.Context, in CreateItemInput) (*models.InventoryItem, error) {
	if in.Barcode == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: barcode and name are required", domain.ErrInvalidInput)
	}
	if in.CurrentStock < 0 {
		return nil, fmt.Errorf("%w: current_stock must not be negative", domain.ErrInvalidInput)
	}
	if in.MinStockAlert != nil && *in.MinStockAlert < 0 {
		return nil, fmt.Errorf("%w: min_stock_alert must not be negative", domain.ErrInvalidInput)
	}

	category := in.Category
	if category == "" {
		category = classifier.CategoryOther
	}
	if !classifier.Valid(category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	unitType := in.UnitType
	if unitType == "" {
		unitType = "pieces"
	}

	minStockAlert := 5
	if in.MinStockAlert != nil {
		minStockAlert = *in.MinStockAlert
	}

	now := time.Now().UTC()
	item := &models.InventoryItem{
		ID:            uuid.NewString(),
		Barcode:       in.Barcode,
		Name:          in.Name,
		Category:      category,
		CurrentStock:  in.CurrentStock,
		MinStockAlert: minStockAlert,
		UnitType:      unitType,
		Brand:         in.Brand,
		Size:          in.Size,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByBarcode(ctx context.Context, barcode string) (*models.InventoryItem, error) {
	return s.repo.GetByBarcode(ctx, barcode)
}

func (s *Service) List(ctx context.Context) ([]models.InventoryItem, error) {
	return s.repo.List(ctx, listLimit)
}

func (s *Service) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *Service) Update(ctx context.Context, id string, patch ItemPatch) (*models.InventoryItem, error) {
	fields := map[string]interface{}{}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
		}
		fields["name"] = *patch.Name
	}
	if patch.Category != nil {
		if !classifier.Valid(*patch.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, *patch.Category)
		}
		fields["category"] = *patch.Category
	}
	if patch.CurrentStock != nil {
		if *patch.CurrentStock < 0 {
			return nil, fmt.Errorf("%w: current_stock must not be negative", domain.ErrInvalidInput)
		}
		fields["current_stock"] = *patch.CurrentStock
	}
	if patch.MinStockAlert != nil {
		if *patch.MinStockAlert < 0 {
			return nil, fmt.Errorf("%w: min_stock_alert must not be negative", domain.ErrInvalidInput)
		}
		fields["min_stock_alert"] = *patch.MinStockAlert
	}
	if patch.UnitType != nil {
		fields["unit_type"] = *patch.UnitType
	}
	if patch.Brand != nil {
		fields["brand"] = *patch.Brand
	}
	if patch.Size != nil {
		fields["size"] = *patch.Size
	}

	fields["updated_at"] = time.Now().UTC()

	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *Service) AddStock(ctx context.Context, id string, quantity int) (*models.InventoryItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.repo.AddStock(ctx, id, quantity)
}

// UseItem records a consumption event: the stock decrement and the usage-log
// append succeed or fail together.
func (s *Service) UseItem(ctx context.Context, id string, quantityUsed int, notes *string) (*models.UsageLog, error) {
	if quantityUsed <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := &models.UsageLog{
		ID:           uuid.NewString(),
		ItemID:       item.ID,
		Barcode:      item.Barcode,
		QuantityUsed: quantityUsed,
		Timestamp:    time.Now().UTC(),
		Notes:        notes,
	}

	if err := s.repo.ConsumeStock(ctx, id, quantityUsed, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) ListUsageLogs(ctx context.Context, limit int) ([]models.UsageLog, error) {
	if limit <= 0 {
		limit = defaultLogsLimit
	}
	if limit > maxLogsLimit {
		limit = maxLogsLimit
	}
	return s.repo.ListUsageLogs(ctx, limit)
}

func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.repo.Stats(ctx)
}
