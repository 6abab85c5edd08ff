package db

import (
	"log"
	"time"

	"github.com/barbearia-america/agenda-api/internal/config"
	"github.com/barbearia-america/agenda-api/internal/models"
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
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Settings{},
		&models.Appointment{},
		&models.Subscription{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// O banco é o único árbitro contra overbooking: índice único parcial no
	// slot, restrito aos status que ocupam a agenda. Dois inserts
	// concorrentes no mesmo horário → o segundo falha com 23505.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uidx_appointments_slot
        ON appointments (barber_id, date, start_time)
        WHERE status IN ('confirmed', 'completed')
    `)

	seedSettings(db)

	return db
}

// Sem o registro de settings a agenda não abre; garante o único registro
func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.Settings{}).Count(&count)
	if count == 0 {
		db.Create(&models.Settings{
			OpeningTime:              "09:00",
			ClosingTime:              "19:00",
			SlotIntervalMin:          30,
			MonthlySubscriptionPrice: 99.90,
		})
	}
}
