package database

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CaCortez384/MiFestival/internal/auth"
	"github.com/CaCortez384/MiFestival/internal/config"
	"github.com/CaCortez384/MiFestival/internal/models"
)

// SeedAdminUser creates the initial admin account when none exists.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) {
	if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPassword == "" {
		log.Println("Info: no admin credentials configured, skipping admin seed.")
		return
	}

	hash, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		log.Printf("⚠️ Could not hash admin password: %v", err)
		return
	}

	admin := models.Users{
		Email:        cfg.Auth.AdminEmail,
		DisplayName:  "Admin",
		PasswordHash: hash,
		Role:         "admin",
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
	if err != nil {
		log.Printf("⚠️ Admin seed failed: %v", err)
		return
	}
	log.Println("✅ Admin user ready")
}

// defaultCandidates is the bundled starter roster shown in the
// available pool before any directory CSV has been ingested.
var defaultCandidates = []string{
	"Bad Bunny",
	"Taylor Swift",
	"Arctic Monkeys",
	"Rosalía",
	"Daft Punk",
	"Billie Eilish",
	"Gorillaz",
	"Karol G",
	"The Strokes",
	"Tame Impala",
	"Paramore",
	"Bizarrap",
}

// SeedCandidates loads the bundled candidate names, skipping any that
// a directory ingest already wrote.
func SeedCandidates(db *gorm.DB) {
	rows := make([]models.CandidateArtist, 0, len(defaultCandidates))
	for _, name := range defaultCandidates {
		rows = append(rows, models.CandidateArtist{Name: name})
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		log.Printf("⚠️ Candidate seed failed: %v", err)
		return
	}
	log.Printf("✅ Candidate directory seeded (%d names)", len(rows))
}
