package main

import (
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"nurastays_backend/internal/model"
	"nurastays_backend/pkg/config"
	"nurastays_backend/pkg/database"
)

// Creates or updates a staff account for the admin dashboard.
func main() {
	emailFlag := flag.String("email", "", "staff email address")
	passwordFlag := flag.String("password", "", "password")
	nameFlag := flag.String("name", "", "display name")
	flag.Parse()

	if *emailFlag == "" || *passwordFlag == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()
	database.InitDB(cfg.Database.URL)
	if err := database.MigrateDatabase(&model.User{}); err != nil {
		log.Fatal("Migration failed:", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*passwordFlag), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Could not hash password:", err)
	}

	db := database.GetDB()

	var user model.User
	if err := db.Where("email = ?", *emailFlag).First(&user).Error; err == nil {
		user.Password = string(hashed)
		user.IsStaff = true
		if *nameFlag != "" {
			user.Name = *nameFlag
		}
		if err := db.Save(&user).Error; err != nil {
			log.Fatal("Could not update user:", err)
		}
		log.Printf("Updated staff account %s", user.Email)
		return
	}

	user = model.User{
		Email:    *emailFlag,
		Password: string(hashed),
		Name:     *nameFlag,
		IsStaff:  true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Could not create user:", err)
	}
	log.Printf("Created staff account %s", user.Email)
}
