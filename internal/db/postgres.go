package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
	"github.com/veraroam/ambassador-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "ambassador", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.Update{},
		&types.Photo{},
		&types.PhotoVote{},
		&types.PhotoComment{},
		&types.Outfit{},
		&types.Destination{},
		&types.Story{},
		&types.TravelDiary{},
		&types.DiaryImage{},
		&types.Experience{},
		&types.Event{},
		&types.EventRegistration{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table, name, column, refTable string
	}{
		{"photo_vote", "fk_photo_vote_photo_id", "photo_id", "photo"},
		{"photo_comment", "fk_photo_comment_photo_id", "photo_id", "photo"},
		{"diary_image", "fk_diary_image_diary_id", "diary_id", "travel_diary"},
		{"event_registration", "fk_event_registration_event_id", "event_id", "event"},
	}
	for _, c := range constraints {
		stmt := fmt.Sprintf(`
			ALTER TABLE %q
			DROP CONSTRAINT IF EXISTS %q;
			ALTER TABLE %q
			ADD CONSTRAINT %q
			FOREIGN KEY (%q)
			REFERENCES %q("id")
			ON DELETE CASCADE
		`, c.table, c.name, c.table, c.name, c.column, c.refTable)
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
