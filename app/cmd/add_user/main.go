package main

import (
	"flag"
	"fmt"

	"github.com/sinholic/epesantren/app/auth"
	"github.com/sinholic/epesantren/app/config"
	"github.com/sinholic/epesantren/app/database"
	"github.com/sinholic/epesantren/app/models"
)

func main() {
	username := flag.String("username", "admin", "login username")
	email := flag.String("email", "admin@epesantren.local", "email address")
	password := flag.String("password", "", "plain password (required)")
	fullName := flag.String("name", "Administrator", "full name")
	roleID := flag.Int("role", 1, "role id")
	flag.Parse()

	if *password == "" {
		fmt.Println("Usage: add_user -username admin -password secret [-email ...] [-name ...] [-role 1]")
		return
	}

	config.Load()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	normalized := database.NormalizeUsername(*username)
	exists, err := database.UserExists(db, *email, normalized, 0)
	if err != nil {
		fmt.Printf("Error checking existing users: %v\n", err)
		return
	}
	if exists {
		fmt.Println("A user with that email or username already exists")
		return
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		Username:       &normalized,
		UserEmail:      email,
		UserPassword:   hashed,
		UserFullName:   fullName,
		UserRoleRoleID: roleID,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s (%s)\n", normalized, *email)
}
