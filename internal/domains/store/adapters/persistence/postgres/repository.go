package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/petstore-api/internal/domains/store/domain"
	"github.com/Apurer/petstore-api/internal/domains/store/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists inventory and orders in PostgreSQL using GORM.
// The schema is owned by platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type inventoryRecord struct {
	PetID     int64     `gorm:"primaryKey;autoIncrement:false;column:pet_id"`
	Quantity  int64     `gorm:"column:quantity;not null;check:chk_inventory_quantity,quantity >= 0"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (inventoryRecord) TableName() string { return "inventory" }

type orderRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	PetID     int64     `gorm:"column:pet_id;index"`
	Quantity  int64     `gorm:"column:quantity"`
	Status    string    `gorm:"column:status;type:varchar(32)"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// Inventory loads every stock entry.
func (r *Repository) Inventory(ctx context.Context) (domain.Inventory, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []inventoryRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	inv := make(domain.Inventory, len(records))
	for _, rec := range records {
		inv[rec.PetID] = rec.Quantity
	}
	return inv, nil
}

// SetStock upserts the quantity for a pet.
func (r *Repository) SetStock(ctx context.Context, petID, quantity int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if quantity < 0 {
		return domain.ErrNegativeStock
	}
	record := inventoryRecord{PetID: petID, Quantity: quantity, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pet_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(&record).Error
}

// AddStock increments an existing entry.
func (r *Repository) AddStock(ctx context.Context, petID, quantity int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var level int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := stockLevel(tx.Clauses(clause.Locking{Strength: "UPDATE"}), petID)
		if err != nil {
			return err
		}
		level = current
		if err := domain.CheckAdd(current, quantity); err != nil {
			return err
		}
		result := tx.Model(&inventoryRecord{}).
			Where("pet_id = ?", petID).
			Updates(map[string]any{"quantity": current + quantity, "updated_at": time.Now().UTC()})
		if result.Error != nil {
			return result.Error
		}
		level = current + quantity
		return nil
	})
	return level, err
}

// RemoveStock decrements an existing entry when enough is on hand.
func (r *Repository) RemoveStock(ctx context.Context, petID, quantity int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var level int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&inventoryRecord{}).
			Where("pet_id = ? AND quantity >= ?", petID, quantity).
			Updates(map[string]any{"quantity": gorm.Expr("quantity - ?", quantity), "updated_at": time.Now().UTC()})
		if result.Error != nil {
			return result.Error
		}
		current, err := stockLevel(tx, petID)
		if err != nil {
			return err
		}
		level = current
		if result.RowsAffected == 0 {
			return domain.ErrInsufficientQuantity
		}
		return nil
	})
	return level, err
}

// PlaceOrder decrements the stock and inserts the order in a single transaction.
func (r *Repository) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := orderRecord{PetID: order.PetID, Quantity: order.Quantity, Status: string(domain.StatusPlaced)}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&inventoryRecord{}).
			Where("pet_id = ? AND quantity >= ?", order.PetID, order.Quantity).
			Updates(map[string]any{"quantity": gorm.Expr("quantity - ?", order.Quantity), "updated_at": time.Now().UTC()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrInsufficientInventory
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// GetOrder fetches one order.
func (r *Repository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// DeleteOrder removes an order and returns it.
func (r *Repository) DeleteOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(records) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return records[0].toDomain(), nil
}

// ListOrders returns all orders ordered by id.
func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres store repository not configured")
	}
	return nil
}

func stockLevel(tx *gorm.DB, petID int64) (int64, error) {
	var record inventoryRecord
	if err := tx.First(&record, "pet_id = ?", petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrPetNotInInventory
		}
		return 0, err
	}
	return record.Quantity, nil
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:       r.ID,
		PetID:    r.PetID,
		Quantity: r.Quantity,
		Status:   domain.Status(r.Status),
	}
}
