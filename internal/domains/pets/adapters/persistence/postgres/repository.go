package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
	"github.com/Apurer/petstore-api/internal/domains/pets/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists pets in PostgreSQL using GORM. The schema is owned by platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type petRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `gorm:"column:name;size:100;uniqueIndex:idx_pets_name_category"`
	Category  string    `gorm:"column:category;size:100;uniqueIndex:idx_pets_name_category"`
	Status    string    `gorm:"column:status;size:100;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

// Create inserts a pet and lets the identity column assign its ID.
func (r *Repository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, errors.New("cannot create nil pet")
	}
	record := toRecord(pet)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err)
	}
	return record.toDomain(), nil
}

// Save updates the mutable columns of an existing pet.
func (r *Repository) Save(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, errors.New("cannot save nil pet")
	}
	result := r.db.WithContext(ctx).Model(&petRecord{}).Where("id = ?", pet.ID).Updates(map[string]any{
		"name":       pet.Name,
		"category":   pet.Category,
		"status":     string(pet.Status),
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, pet.ID)
}

// GetByID fetches a pet if present.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record petRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a pet.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&petRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// FindByStatus returns pets with an exactly matching status.
func (r *Repository) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Pet, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", string(status)) })
}

// List returns all pets.
func (r *Repository) List(ctx context.Context) ([]*domain.Pet, error) {
	return r.find(ctx, nil)
}

func (r *Repository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*domain.Pet, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx)
	if scope != nil {
		query = scope(query)
	}
	var records []petRecord
	if err := query.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	pets := make([]*domain.Pet, 0, len(records))
	for i := range records {
		pets = append(pets, records[i].toDomain())
	}
	return pets, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres pet repository not configured")
	}
	return nil
}

// translate maps the (name, category) unique index violation onto the domain failure.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicatePet
	}
	return err
}

func toRecord(pet *domain.Pet) petRecord {
	return petRecord{
		ID:       pet.ID,
		Name:     pet.Name,
		Category: pet.Category,
		Status:   string(pet.Status),
	}
}

func (r petRecord) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		Status:   domain.Status(r.Status),
	}
}
