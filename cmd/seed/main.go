package main

import (
	"log"
	"time"

	"talentbook/internal/database"
	"talentbook/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("talentbook.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (dependents first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM auth_tokens")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	now := time.Now().UTC()

	admin := domain.User{
		FirstName:       "Ada",
		LastName:        "Okonkwo",
		StageName:       "admin",
		Email:           "admin@talentbook.io",
		PasswordHash:    mustHash("admin123"),
		Role:            domain.RoleAdmin,
		EmailVerifiedAt: &now,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	talents := []domain.User{
		{
			FirstName:       "Derrick",
			LastName:        "James",
			StageName:       "DJFlow",
			Email:           "djflow@talentbook.io",
			PasswordHash:    mustHash("talent123"),
			Role:            domain.RoleTalent,
			EmailVerifiedAt: &now,
		},
		{
			FirstName:       "Maya",
			LastName:        "Santos",
			StageName:       "MayaSings",
			Email:           "maya@talentbook.io",
			PasswordHash:    mustHash("talent123"),
			Role:            domain.RoleTalent,
			EmailVerifiedAt: &now,
		},
	}
	for i := range talents {
		if err := db.Create(&talents[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	clients := []domain.User{
		{
			FirstName:       "Omar",
			LastName:        "Haddad",
			StageName:       "omarh",
			Email:           "omar@example.com",
			PasswordHash:    mustHash("client123"),
			Role:            domain.RoleClient,
			EmailVerifiedAt: &now,
		},
		{
			FirstName:    "Lena",
			LastName:     "Fischer",
			StageName:    "lenaf",
			Email:        "lena@example.com",
			PasswordHash: mustHash("client123"),
			Role:         domain.RoleClient,
			// unverified on purpose: exercises the 403 login path
		},
	}
	for i := range clients {
		if err := db.Create(&clients[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating services...")

	advance := 25.0
	advanceType := domain.AmountPercentage
	services := []domain.Service{
		{
			UserID:       talents[0].ID,
			Title:        "DJ set (club night)",
			Description:  "Four hour set, own controller and lights.",
			Duration:     240,
			Price:        100,
			Discount:     0,
			DiscountType: domain.AmountPercentage,
		},
		{
			UserID:              talents[0].ID,
			Title:               "Wedding party",
			Description:         "Full evening, tailored playlist.",
			Duration:            360,
			Price:               450,
			Discount:            10,
			DiscountType:        domain.AmountPercentage,
			AdvancePayment:      true,
			AdvancePaymentValue: &advance,
			AdvancePaymentType:  &advanceType,
		},
		{
			UserID:       talents[1].ID,
			Title:        "Acoustic live set",
			Description:  "Voice and guitar, 90 minutes.",
			Duration:     90,
			Price:        220,
			Discount:     0,
			DiscountType: domain.AmountFixed,
		},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating bookings...")

	bookings := []domain.Booking{
		{
			TalentID:    talents[0].ID,
			ClientID:    clients[0].ID,
			ServiceID:   services[0].ID,
			Price:       services[0].Price,
			BookingDate: now.AddDate(0, 0, 14).Truncate(24 * time.Hour),
			BookingTime: "21:00",
			Status:      domain.BookingPending,
		},
		{
			TalentID:    talents[1].ID,
			ClientID:    clients[0].ID,
			ServiceID:   services[2].ID,
			Price:       services[2].Price,
			BookingDate: now.AddDate(0, 0, 7).Truncate(24 * time.Hour),
			BookingTime: "19:30",
			Status:      domain.BookingAccepted,
		},
	}
	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed finished.")
}

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(h)
}
