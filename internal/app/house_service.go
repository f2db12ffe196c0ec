package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// HouseServiceImpl implements the HouseService interface.
type HouseServiceImpl struct {
	houseRepo secondary.HouseRepository
}

// NewHouseService creates a new HouseService with injected dependencies.
func NewHouseService(houseRepo secondary.HouseRepository) *HouseServiceImpl {
	return &HouseServiceImpl{houseRepo: houseRepo}
}

// CreateHouse creates a new house.
func (s *HouseServiceImpl) CreateHouse(ctx context.Context, req primary.CreateHouseRequest) (*primary.House, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: house name is required", domain.ErrValidation)
	}

	nextID, err := s.houseRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate house ID: %w", err)
	}

	record := &secondary.HouseRecord{
		ID:      nextID,
		Name:    name,
		Comment: strings.TrimSpace(req.Comment),
	}

	if err := s.houseRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create house: %w", err)
	}

	created, err := s.houseRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created house: %w", err)
	}

	return recordToHouse(created), nil
}

// GetHouse retrieves a house by ID.
func (s *HouseServiceImpl) GetHouse(ctx context.Context, houseID string) (*primary.House, error) {
	record, err := s.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return nil, err
	}
	return recordToHouse(record), nil
}

// ListHouses lists all houses ordered by name.
func (s *HouseServiceImpl) ListHouses(ctx context.Context) ([]*primary.House, error) {
	records, err := s.houseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}

	houses := make([]*primary.House, len(records))
	for i, r := range records {
		houses[i] = recordToHouse(r)
	}
	return houses, nil
}

// UpdateHouse updates a house's fields. Empty request fields keep the
// stored value.
func (s *HouseServiceImpl) UpdateHouse(ctx context.Context, req primary.UpdateHouseRequest) error {
	record, err := s.houseRepo.GetByID(ctx, req.HouseID)
	if err != nil {
		return err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		record.Name = name
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		record.Comment = comment
	}

	if err := s.houseRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update house: %w", err)
	}

	return nil
}

// DeleteHouse deletes a house. Houses referenced by assignment history
// cannot be deleted; history is permanent.
func (s *HouseServiceImpl) DeleteHouse(ctx context.Context, houseID string) error {
	if _, err := s.houseRepo.GetByID(ctx, houseID); err != nil {
		return err
	}

	count, err := s.houseRepo.CountAssignments(ctx, houseID)
	if err != nil {
		return fmt.Errorf("failed to check house references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: house %s has %d assignment(s)", domain.ErrConstraint, houseID, count)
	}

	if err := s.houseRepo.Delete(ctx, houseID); err != nil {
		return fmt.Errorf("failed to delete house: %w", err)
	}

	return nil
}

func recordToHouse(r *secondary.HouseRecord) *primary.House {
	return &primary.House{
		ID:        r.ID,
		Name:      r.Name,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure HouseServiceImpl implements the interface.
var _ primary.HouseService = (*HouseServiceImpl)(nil)
