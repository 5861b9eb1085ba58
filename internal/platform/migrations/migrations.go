package migrations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Tables lists every table owned by the service, in dependency-free order.
var Tables = []string{"pets", "pet_idempotency_keys", "inventory", "orders", "users"}

// Run applies the schema for the bounded contexts.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&petRecord{},
		&idempotencyRecord{},
		&inventoryRecord{},
		&orderRecord{},
		&userRecord{},
	)
}

// Truncate empties the given tables (all owned tables when none are named) and restarts identities,
// so ids start again at 1. Unknown table names are rejected.
func Truncate(ctx context.Context, db *gorm.DB, tables ...string) error {
	if len(tables) == 0 {
		tables = Tables
	}
	quoted := make([]string, 0, len(tables))
	for _, table := range tables {
		if !owned(table) {
			return fmt.Errorf("refusing to truncate unknown table %q", table)
		}
		quoted = append(quoted, pq.QuoteIdentifier(table))
	}
	if db == nil {
		return nil
	}
	return db.WithContext(ctx).Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY").Error
}

func owned(table string) bool {
	for _, t := range Tables {
		if t == table {
			return true
		}
	}
	return false
}

// Pet schema mirrors the pets Postgres adapter.
type petRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `gorm:"column:name;size:100;uniqueIndex:idx_pets_name_category"`
	Category  string    `gorm:"column:category;size:100;uniqueIndex:idx_pets_name_category"`
	Status    string    `gorm:"column:status;size:100;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

// Idempotency schema mirrors the pets idempotency store.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:255"`
	RequestHash string    `gorm:"column:request_hash;size:128"`
	PetID       int64     `gorm:"column:pet_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (idempotencyRecord) TableName() string { return "pet_idempotency_keys" }

// Inventory schema mirrors the store Postgres adapter.
type inventoryRecord struct {
	PetID     int64     `gorm:"primaryKey;autoIncrement:false;column:pet_id"`
	Quantity  int64     `gorm:"column:quantity;not null;check:chk_inventory_quantity,quantity >= 0"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (inventoryRecord) TableName() string { return "inventory" }

// Order schema mirrors the store Postgres adapter.
type orderRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	PetID     int64     `gorm:"column:pet_id;index"`
	Quantity  int64     `gorm:"column:quantity"`
	Status    string    `gorm:"column:status;type:varchar(32)"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Username  string    `gorm:"column:username;size:255;uniqueIndex"`
	Email     string    `gorm:"column:email"`
	Password  string    `gorm:"column:password"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }
