package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
)

type (
	// TableRepository exposes only the query shapes the workflow needs so
	// any storage engine can back it.
	TableRepository interface {
		Create(ctx context.Context, table *models.Table) error
		FindAll(ctx context.Context) ([]models.Table, error)
		FindByID(ctx context.Context, id uint) (*models.Table, error)
		FindByNumero(ctx context.Context, numero int) (*models.Table, error)
		FindActiveByQRCode(ctx context.Context, qrCode string) (*models.Table, error)
		FindByQRCode(ctx context.Context, qrCode string) (*models.Table, error)
		Update(ctx context.Context, table *models.Table) error
	}

	tableRepository struct {
		db *gorm.DB
	}
)

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *models.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) FindAll(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.WithContext(ctx).Order("numero asc").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *tableRepository) FindByID(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) FindByNumero(ctx context.Context, numero int) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).Where("numero = ?", numero).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) FindActiveByQRCode(ctx context.Context, qrCode string) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).
		Where("qr_code = ? AND active = ?", qrCode, true).
		First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) FindByQRCode(ctx context.Context, qrCode string) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).Where("qr_code = ?", qrCode).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) Update(ctx context.Context, table *models.Table) error {
	return r.db.WithContext(ctx).Save(table).Error
}
