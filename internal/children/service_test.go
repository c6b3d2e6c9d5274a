package children

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ohitslormee/baby-ess-tracker/internal/database/models"
	"github.com/ohitslormee/baby-ess-tracker/internal/domain"
)

type fakeChildRepo struct {
	mu      sync.Mutex
	records map[string]*models.Child
}

func newFakeChildRepo() *fakeChildRepo {
	return &fakeChildRepo{records: map[string]*models.Child{}}
}

func (f *fakeChildRepo) InsertChild(_ context.Context, child *models.Child) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *child
	f.records[child.ID] = &clone
	return nil
}

func (f *fakeChildRepo) GetChildByID(_ context.Context, id string) (*models.Child, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	child, ok := f.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *child
	return &clone, nil
}

func (f *fakeChildRepo) ListChildren(_ context.Context, limit int) ([]models.Child, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Child
	for _, child := range f.records {
		out = append(out, *child)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeChildRepo) UpdateChildFields(_ context.Context, id string, fields map[string]interface{}) (*models.Child, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	child, ok := f.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			child.Name = value.(string)
		case "date_of_birth":
			child.DateOfBirth = value.(string)
		case "gender":
			v := value.(string)
			child.Gender = &v
		case "height":
			v := value.(float64)
			child.Height = &v
		case "weight":
			v := value.(float64)
			child.Weight = &v
		case "notes":
			v := value.(string)
			child.Notes = &v
		case "updated_at":
			child.UpdatedAt = value.(time.Time)
		}
	}
	clone := *child
	return &clone, nil
}

func (f *fakeChildRepo) DeleteChild(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func TestCreateChild(t *testing.T) {
	svc := NewService(newFakeChildRepo())

	child, err := svc.Create(context.Background(), CreateChildInput{
		Name:        "Mina",
		DateOfBirth: "2024-03-15",
		Weight:      floatPtr(7.4),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if child.ID == "" {
		t.Error("expected generated id")
	}
	if child.Weight == nil || *child.Weight != 7.4 {
		t.Errorf("expected weight 7.4, got %v", child.Weight)
	}
	if child.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCreateChild_MissingFields(t *testing.T) {
	svc := NewService(newFakeChildRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateChildInput{Name: "", DateOfBirth: "2024-03-15"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateChildInput{Name: "Mina", DateOfBirth: ""}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateChild_NoUniquenessConstraint(t *testing.T) {
	svc := NewService(newFakeChildRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateChildInput{Name: "Mina", DateOfBirth: "2024-03-15"})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.Create(ctx, CreateChildInput{Name: "Mina", DateOfBirth: "2024-03-15"})
	if err != nil {
		t.Fatalf("duplicate-name create failed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("expected distinct ids")
	}
}

func TestUpdateChild_PartialPatch(t *testing.T) {
	svc := NewService(newFakeChildRepo())
	ctx := context.Background()

	child, _ := svc.Create(ctx, CreateChildInput{Name: "Mina", DateOfBirth: "2024-03-15", Height: floatPtr(62)})

	updated, err := svc.Update(ctx, child.ID, ChildPatch{Weight: floatPtr(8.1)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Weight == nil || *updated.Weight != 8.1 {
		t.Errorf("expected weight 8.1, got %v", updated.Weight)
	}
	if updated.Height == nil || *updated.Height != 62 {
		t.Errorf("unset field changed: height %v", updated.Height)
	}
	if updated.Name != "Mina" {
		t.Errorf("unset field changed: name %q", updated.Name)
	}
}

func TestUpdateChild_NotFound(t *testing.T) {
	svc := NewService(newFakeChildRepo())

	if _, err := svc.Update(context.Background(), "missing", ChildPatch{Name: strPtr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteChild(t *testing.T) {
	svc := NewService(newFakeChildRepo())
	ctx := context.Background()

	child, _ := svc.Create(ctx, CreateChildInput{Name: "Mina", DateOfBirth: "2024-03-15"})

	if err := svc.Delete(ctx, child.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.Get(ctx, child.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteChild_NotFound(t *testing.T) {
	svc := NewService(newFakeChildRepo())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
