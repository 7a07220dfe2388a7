package database

import (
	"context"
	"fmt"
	"time"

	"pandoro-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and schema migration
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrations  bool
}

func (o Options) withDefaults() Options {
	if o.LogLevel == 0 {
		o.LogLevel = logger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 20
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 10
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	if o.ConnMaxIdleTime == 0 {
		o.ConnMaxIdleTime = 10 * time.Minute
	}
	return o
}

// Models lists the Pandoro schema in migration order: a model only references the ones before it.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Group{},
		&models.GroupMember{},
		&models.Project{},
		&models.ProjectUpdate{},
		&models.UpdateEvent{},
		&models.Note{},
		&models.Changelog{},
	}
}

// Initialize connects to Postgres and, unless disabled, migrates the Pandoro schema.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)

	if o.SkipMigrations {
		return db, nil
	}

	// BaseModel ids default to gen_random_uuid()
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

// Ping checks the connection within timeout
func Ping(ctx context.Context, db *gorm.DB, timeout time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// TableNames returns the tables backing Models, join tables included, in reverse
// migration order so that dependents come first.
func TableNames(db *gorm.DB) ([]string, error) {
	all := Models()
	seen := make(map[string]bool)
	names := make([]string, 0, len(all)+1)
	for i := len(all) - 1; i >= 0; i-- {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(all[i]); err != nil {
			return nil, fmt.Errorf("parse %T: %w", all[i], err)
		}
		for _, rel := range stmt.Schema.Relationships.Relations {
			if rel.JoinTable != nil && !seen[rel.JoinTable.Table] {
				seen[rel.JoinTable.Table] = true
				names = append(names, rel.JoinTable.Table)
			}
		}
		if !seen[stmt.Schema.Table] {
			seen[stmt.Schema.Table] = true
			names = append(names, stmt.Schema.Table)
		}
	}
	return names, nil
}
