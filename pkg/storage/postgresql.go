package storage

import (
	"fmt"
	"log/slog"

	"github.com/eventt-hub/event-manager/pkg/config"
	"github.com/eventt-hub/event-manager/pkg/model"
	slogGorm "github.com/orandin/slog-gorm"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(c config.Postgresql, logger *slog.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger: slogGorm.New(slogGorm.WithHandler(logger.Handler())),
		// duplicate-key failures need to surface as gorm.ErrDuplicatedKey so
		// repositories can map them to a conflict
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, err
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Attendance{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
