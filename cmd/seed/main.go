package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agriconnect/internal/auth"
	"agriconnect/internal/config"
	"agriconnect/internal/db"
	"agriconnect/internal/model"
)

const defaultSeedFile = "seed/data.json"

// SeedData is the versioned bootstrap dataset. Re-running the seeder
// with an already-applied version is a no-op.
type SeedData struct {
	Version            int            `json:"version"`
	Roles              []SeedRole     `json:"roles"`
	ProductCategories  []SeedCategory `json:"product_categories"`
	SolutionCategories []SeedCategory `json:"solution_categories"`
	Admin              SeedAdmin      `json:"admin"`
}

// SeedRole names a role to create.
type SeedRole struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SeedCategory names a category to create.
type SeedCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SeedAdmin is the bootstrap administrator account. The password
// comes from the environment, never from the seed file.
type SeedAdmin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.ProductCategory{},
		&model.EnergySolutionCategory{},
		&model.SeedVersion{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		seedFile = defaultSeedFile
	}
	data, err := loadSeedFile(seedFile)
	if err != nil {
		log.Fatalf("Failed to load seed file %s: %v", seedFile, err)
	}

	var applied model.SeedVersion
	err = gormDB.Where("version = ?", data.Version).First(&applied).Error
	if err == nil {
		log.Printf("Seed version %d already applied at %s, nothing to do", data.Version, applied.AppliedAt)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to check seed version: %v", err)
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := seedRoles(tx, data.Roles); err != nil {
			return err
		}
		if err := seedProductCategories(tx, data.ProductCategories); err != nil {
			return err
		}
		if err := seedSolutionCategories(tx, data.SolutionCategories); err != nil {
			return err
		}
		if err := seedAdmin(tx, data.Admin); err != nil {
			return err
		}
		return tx.Create(&model.SeedVersion{Version: data.Version, AppliedAt: time.Now()}).Error
	})
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Printf("Seed version %d applied", data.Version)
}

func loadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func seedRoles(tx *gorm.DB, roles []SeedRole) error {
	for _, r := range roles {
		role := model.Role{Name: r.Name, Description: r.Description, Active: true}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProductCategories(tx *gorm.DB, categories []SeedCategory) error {
	for _, c := range categories {
		category := model.ProductCategory{Name: c.Name, Description: c.Description, Active: true}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSolutionCategories(tx *gorm.DB, categories []SeedCategory) error {
	for _, c := range categories {
		category := model.EnergySolutionCategory{Name: c.Name, Description: c.Description, Active: true}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(tx *gorm.DB, admin SeedAdmin) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping administrator account")
		return nil
	}
	if admin.Username == "" || admin.Email == "" {
		log.Println("Seed file names no administrator, skipping")
		return nil
	}

	var existing model.User
	err := tx.Where("username = ?", admin.Username).First(&existing).Error
	if err == nil {
		log.Printf("Administrator %s already exists, skipping", admin.Username)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	var role model.Role
	if err := tx.Where("name = ?", auth.RoleAdministrator.String()).First(&role).Error; err != nil {
		return err
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return err
	}
	user := model.User{
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: auth.HashPassword(password, salt),
		PasswordSalt: salt,
		RoleID:       role.ID,
		Active:       true,
	}
	return tx.Create(&user).Error
}
