package db

import (
	"log"
	"time"

	"github.com/zlatne-makaze/barbershop-api/internal/config"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Customer{},
		&models.Reservation{},
		&models.AvailabilityOverride{},
		&models.AdminUser{},
		&models.AuditLog{},
		&models.GalleryImage{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The no-overlap invariant lives in the database, not only in the
	// application pre-check: two racing inserts for the same barber and
	// overlapping [start_time, end_time) windows make exactly one of them
	// fail with an exclusion violation (23P01).
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'reservations_no_overlap'
            ) THEN
                ALTER TABLE reservations
                    ADD CONSTRAINT reservations_no_overlap
                    EXCLUDE USING gist (
                        barber_id WITH =,
                        tstzrange(start_time, end_time, '[)') WITH &&
                    )
                    WHERE (status = 'scheduled');
            END IF;
        END $$;
    `)

	return db
}
