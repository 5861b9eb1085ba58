package catalog

import (
	"context"
	"errors"

	petports "github.com/Apurer/petstore-api/internal/domains/pets/ports"
	storeports "github.com/Apurer/petstore-api/internal/domains/store/ports"
)

var _ storeports.PetCatalog = (*Pets)(nil)

// Pets answers catalog lookups from the pets repository.
type Pets struct {
	repo petports.Repository
}

func NewPets(repo petports.Repository) *Pets {
	return &Pets{repo: repo}
}

// Exists reports whether the pets repository holds the id.
func (p *Pets) Exists(ctx context.Context, petID int64) (bool, error) {
	if p == nil || p.repo == nil {
		return false, errors.New("pet catalog not configured")
	}
	_, err := p.repo.GetByID(ctx, petID)
	if errors.Is(err, petports.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
