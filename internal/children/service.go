// Package children is keyed CRUD over child profile records. No other
// entity references a child, so deletes are hard deletes with no cascade.
package children

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ohitslormee/baby-ess-tracker/internal/database/models"
	"github.com/ohitslormee/baby-ess-tracker/internal/domain"
	"github.com/ohitslormee/baby-ess-tracker/internal/port"
)

const listLimit = 100

type Service struct {
	repo port.ChildRepository
}

func NewService(repo port.ChildRepository) *Service {
	return &Service{repo: repo}
}

type CreateChildInput struct {
	Name        string   `json:"name"`
	DateOfBirth string   `json:"date_of_birth"`
	Gender      *string  `json:"gender"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	Notes       *string  `json:"notes"`
}

// ChildPatch carries a partial update: only non-nil fields are applied.
type ChildPatch struct {
	Name        *string  `json:"name"`
	DateOfBirth *string  `json:"date_of_birth"`
	Gender      *string  `json:"gender"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	Notes       *string  `json:"notes"`
}

func (s *Service) Create(ctx context.Context, in CreateChildInput) (*models.Child, error) {
	if in.Name == "" || in.DateOfBirth == "" {
		return nil, fmt.Errorf("%w: name and date_of_birth are required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	child := &models.Child{
		ID:          uuid.NewString(),
		Name:        in.Name,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
		Height:      in.Height,
		Weight:      in.Weight,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.InsertChild(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Child, error) {
	return s.repo.GetChildByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]models.Child, error) {
	return s.repo.ListChildren(ctx, listLimit)
}

func (s *Service) Update(ctx context.Context, id string, patch ChildPatch) (*models.Child, error) {
	fields := map[string]interface{}{}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
		}
		fields["name"] = *patch.Name
	}
	if patch.DateOfBirth != nil {
		if *patch.DateOfBirth == "" {
			return nil, fmt.Errorf("%w: date_of_birth must not be empty", domain.ErrInvalidInput)
		}
		fields["date_of_birth"] = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		fields["gender"] = *patch.Gender
	}
	if patch.Height != nil {
		fields["height"] = *patch.Height
	}
	if patch.Weight != nil {
		fields["weight"] = *patch.Weight
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	fields["updated_at"] = time.Now().UTC()

	return s.repo.UpdateChildFields(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteChild(ctx, id)
}
