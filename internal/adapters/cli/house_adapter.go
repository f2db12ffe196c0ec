package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
)

// HouseAdapter is a thin adapter that translates CLI operations to HouseService calls.
type HouseAdapter struct {
	service primary.HouseService
	out     io.Writer
}

// NewHouseAdapter creates a new HouseAdapter with the given service.
func NewHouseAdapter(service primary.HouseService, out io.Writer) *HouseAdapter {
	return &HouseAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a house and prints the assigned ID.
func (a *HouseAdapter) Create(ctx context.Context, name, comment string) (*primary.House, error) {
	house, err := a.service.CreateHouse(ctx, primary.CreateHouseRequest{
		Name:    name,
		Comment: comment,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Created house %s: %s\n", house.ID, house.Name)
	return house, nil
}

// List lists all houses ordered by name.
func (a *HouseAdapter) List(ctx context.Context) ([]*primary.House, error) {
	houses, err := a.service.ListHouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}

	if len(houses) == 0 {
		fmt.Fprintln(a.out, "No houses found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first house:")
		fmt.Fprintln(a.out, "  taskmeister house add --name \"Seaside Villa\"")
		return houses, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMMENT")
	fmt.Fprintln(w, "--\t----\t-------")

	for _, house := range houses {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			house.ID,
			house.Name,
			house.Comment,
		)
	}

	w.Flush()
	return houses, nil
}

// Update applies non-empty fields to an existing house.
func (a *HouseAdapter) Update(ctx context.Context, houseID, name, comment string) error {
	err := a.service.UpdateHouse(ctx, primary.UpdateHouseRequest{
		HouseID: houseID,
		Name:    name,
		Comment: comment,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Updated house %s\n", houseID)
	return nil
}

// Delete removes a house. Houses with assignment history are kept.
func (a *HouseAdapter) Delete(ctx context.Context, houseID string) error {
	house, err := a.service.GetHouse(ctx, houseID)
	if err != nil {
		return err
	}

	if err := a.service.DeleteHouse(ctx, houseID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted house %s: %s\n", house.ID, house.Name)
	return nil
}
