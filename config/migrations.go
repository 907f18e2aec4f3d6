package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"p9e.in/crewcall/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "10032026_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Region{}, &models.Event{},
					&models.TeamMember{}, &models.ManagerLink{})
			},
		},
		{
			ID: "10032026_create_timekeeping_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.TimeEntry{}, &models.AttestationSignature{})
			},
		},
		{
			ID: "12032026_create_availability_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.AvailabilityRequest{}, &models.AvailabilityResponse{})
			},
		},
		{
			ID: "19032026_index_time_entries_by_day",
			Migrate: func(tx *gorm.DB) error {
				// Timesheet reconstruction always reads one user+event slice.
				return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_time_entries_user_event
					ON time_entries (user_id, event_id, punched_at)`).Error
			},
		},
	})

	return m.Migrate()
}
