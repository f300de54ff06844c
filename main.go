package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pointsclub/clubadmin/internal/auth"
	"github.com/pointsclub/clubadmin/internal/session"
)

// Prints values for the local config: a bcrypt hash for
// auth.local.password_hash with -hash, otherwise a fresh session.secret.
func main() {
	password := flag.String("hash", "", "Password to hash for the local auth provider")
	flag.Parse()

	if *password != "" {
		hash, err := auth.HashPassword(*password)
		if err != nil {
			log.Fatalf("Unable to hash password: %v", err)
		}
		fmt.Println("Password hash:", hash)
		return
	}

	fmt.Println("Generated session secret (hex):", session.GenerateSecret())
}
