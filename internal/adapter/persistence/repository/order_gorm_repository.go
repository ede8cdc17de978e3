package repository

import (
	"context"
	"errors"
	"time"

	"payment_init/internal/domain/entities"
	"payment_init/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type orderRecord struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Status    string    `gorm:"column:status"`
	Total     float64   `gorm:"column:total"`
	Currency  string    `gorm:"column:currency"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// OrderGormRepository reads orders from a relational order store.
type OrderGormRepository struct {
	db        *gorm.DB
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB, tableName string) *OrderGormRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderGormRepository{db: db, tableName: tableName}
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var rec orderRecord
	err := r.db.WithContext(ctx).Table(r.tableName).Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}

	return entities.Order{
		ID:        rec.ID,
		Status:    entities.OrderStatus(rec.Status),
		Total:     rec.Total,
		Currency:  rec.Currency,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}
