package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

// Storage is the set of database operations the repository layer builds on.
// Transaction hands the callback a Storage scoped to one database
// transaction; the transaction commits when the callback returns nil and
// rolls back otherwise.
type Storage interface {
	MigrateTable(tbl ...any) error
	Transaction(ctx context.Context, fn func(tx Storage) error) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, conds map[string]any, entity any) error
	GetAllBy(ctx context.Context, conds map[string]any, order string, entities any) error
	GetSomeBy(ctx context.Context, conds map[string]any, order string, limit int, entities any) error
	UpdateFields(ctx context.Context, model any, conds map[string]any, fields map[string]any) (int64, error)
	DeleteBy(ctx context.Context, model any, conds map[string]any) (int64, error)
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Transaction(ctx context.Context, fn func(tx Storage) error) error {
	return f.DB.WithContext(ctx).Transaction(func(txDB *gorm.DB) error {
		return fn(&PostgresDB{DB: txDB})
	})
}

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, conds map[string]any, entity any) error {
	err := f.DB.WithContext(ctx).Where(conds).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, conds map[string]any, order string, entities any) error {
	return f.GetSomeBy(ctx, conds, order, 0, entities)
}

// GetSomeBy is GetAllBy with a row cap; a limit of zero means no cap.
func (f *PostgresDB) GetSomeBy(ctx context.Context, conds map[string]any, order string, limit int, entities any) error {
	query := f.DB.WithContext(ctx).Where(conds)
	if order != "" {
		query = query.Order(order)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records: %w", err)
	}
	return nil
}

func (f *PostgresDB) UpdateFields(ctx context.Context, model any, conds map[string]any, fields map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(conds).Updates(fields)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("updating records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) DeleteBy(ctx context.Context, model any, conds map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(conds).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
