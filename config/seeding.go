package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"p9e.in/crewcall/models"
)

// SeedRegions installs the default named regions on an empty table.
func SeedRegions() {
	var count int64
	DB.Model(&models.Region{}).Count(&count)
	if count > 0 {
		return
	}

	regions := []models.Region{
		{Name: "New York Metro", Code: "NYC", CenterLat: 40.7128, CenterLng: -74.0060, RadiusKm: 60},
		{Name: "Los Angeles", Code: "LA", CenterLat: 34.0522, CenterLng: -118.2437, RadiusKm: 80},
		{Name: "Chicago", Code: "CHI", CenterLat: 41.8781, CenterLng: -87.6298, RadiusKm: 60},
		{Name: "Atlanta", Code: "ATL", CenterLat: 33.7490, CenterLng: -84.3880, RadiusKm: 60},
		{Name: "Dallas-Fort Worth", Code: "DFW", CenterLat: 32.7767, CenterLng: -96.7970, RadiusKm: 80},
	}
	for i := range regions {
		regions[i].IsActive = true
	}

	if err := DB.Create(&regions).Error; err != nil {
		log.Printf("Warning: region seeding failed: %v", err)
		return
	}
	log.Printf("Seeded %d default regions", len(regions))
}

// SeedSuperAdmin creates the bootstrap account from env, once.
func SeedSuperAdmin() {
	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: could not hash super admin password: %v", err)
		return
	}
	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Warning: super admin seeding failed: %v", err)
		return
	}
	log.Println("Seeded super admin account")
}
