package primary

import "context"

// HouseService defines the primary port for house operations.
type HouseService interface {
	// CreateHouse creates a new house.
	CreateHouse(ctx context.Context, req CreateHouseRequest) (*House, error)

	// GetHouse retrieves a house by ID.
	GetHouse(ctx context.Context, houseID string) (*House, error)

	// ListHouses lists all houses ordered by name.
	ListHouses(ctx context.Context) ([]*House, error)

	// UpdateHouse updates a house's fields.
	UpdateHouse(ctx context.Context, req UpdateHouseRequest) error

	// DeleteHouse deletes a house. Fails when assignment history
	// references the house.
	DeleteHouse(ctx context.Context, houseID string) error
}

// House is a house as seen by callers of the primary ports.
type House struct {
	ID        string
	Name      string
	Comment   string
	CreatedAt string
}

// CreateHouseRequest contains parameters for creating a house.
type CreateHouseRequest struct {
	Name    string
	Comment string
}

// UpdateHouseRequest contains parameters for updating a house.
// Empty fields are left unchanged.
type UpdateHouseRequest struct {
	HouseID string
	Name    string
	Comment string
}
