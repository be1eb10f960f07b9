package markers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PendingMarker is the persisted form of one marker row.
type PendingMarker struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_project;not null"`
	ProjectID uint      `gorm:"uniqueIndex:idx_user_project;not null"`
	CreatedAt time.Time
}

func (PendingMarker) TableName() string { return "pending_markers" }

// DatabaseStore persists markers in a relational database, surviving gateway
// restarts the way the SPA's localStorage survives page reloads.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore opens the configured database and migrates the marker table.
func NewDatabaseStore(driver, dsn string) (*DatabaseStore, error) {
	var dialector gorm.Dialector

	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&PendingMarker{}); err != nil {
		return nil, fmt.Errorf("failed to migrate marker table: %w", err)
	}

	return &DatabaseStore{db: db}, nil
}

func (s *DatabaseStore) Get(ctx context.Context, userID, projectID uint) (bool, error) {
	var marker PendingMarker
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&marker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *DatabaseStore) Set(ctx context.Context, userID, projectID uint) error {
	marker := PendingMarker{UserID: userID, ProjectID: projectID, CreatedAt: time.Now()}
	// Upsert: a second Set for the same pair must not fail.
	return s.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		FirstOrCreate(&marker).Error
}

func (s *DatabaseStore) Clear(ctx context.Context, userID, projectID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&PendingMarker{}).Error
}

func (s *DatabaseStore) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("created_at < ?", olderThan).
		Delete(&PendingMarker{})
	return result.RowsAffected, result.Error
}

func (s *DatabaseStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
