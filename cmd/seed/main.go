package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joychandrauday/anycomp-backend/internal/config"
	"github.com/joychandrauday/anycomp-backend/internal/database"
	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

// Seeds the fee tier table, a super admin account, and a starter set of
// catalog services. Safe to run repeatedly: rows are upserted by their
// natural keys.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	seedFeeTiers(db)
	seedSuperAdmin(db)
	seedServices(db)

	log.Println("Seed complete")
}

func seedFeeTiers(db *gorm.DB) {
	tiers := []domain.PlatformFee{
		{TierName: domain.TierBasic, MinValue: 0, MaxValue: 1000, PlatformFeePercentage: 10},
		{TierName: domain.TierStandard, MinValue: 1000.01, MaxValue: 5000, PlatformFeePercentage: 8.5},
		{TierName: domain.TierPremium, MinValue: 5000.01, MaxValue: 20000, PlatformFeePercentage: 6},
		{TierName: domain.TierEnterprise, MinValue: 20000.01, MaxValue: 100000, PlatformFeePercentage: 4},
	}

	for i := range tiers {
		tiers[i].ID = uuid.NewString()
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tier_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"min_value", "max_value", "platform_fee_percentage",
		}),
	}).Create(&tiers).Error
	if err != nil {
		log.Fatal("seeding fee tiers failed:", err)
	}
	log.Printf("seeded %d fee tiers", len(tiers))
}

func seedSuperAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@anycomp.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
	}

	var existing domain.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("super admin %s already exists", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatal("super admin lookup failed:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hashing admin password failed:", err)
	}

	admin := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Platform Admin",
		Role:         domain.RoleSuperAdmin,
		Status:       domain.UserActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("seeding super admin failed:", err)
	}
	log.Printf("seeded super admin %s", email)
}

func seedServices(db *gorm.DB) {
	titles := []string{
		"Company Incorporation",
		"Annual Return Filing",
		"AGM Preparation",
		"Registered Office Address",
		"Share Transfer",
		"Director Appointment",
	}

	for _, title := range titles {
		var count int64
		if err := db.Model(&domain.ServiceMaster{}).Where("title = ?", title).Count(&count).Error; err != nil {
			log.Fatal("service lookup failed:", err)
		}
		if count > 0 {
			continue
		}
		m := domain.ServiceMaster{ID: uuid.NewString(), Title: title}
		if err := db.Create(&m).Error; err != nil {
			log.Fatal("seeding services failed:", err)
		}
	}
	log.Printf("seeded %d catalog services", len(titles))
}
