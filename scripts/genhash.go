package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"crypto/rand"

	"golang.org/x/crypto/bcrypt"
)

// Generates a bcrypt hash and a ready-to-run INSERT for bootstrapping an
// admin account. Usage: go run scripts/genhash.go <email> <password>
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: genhash <email> <password>")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var id [12]byte
	if _, err := rand.Read(id[:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Email: %s\nHash:  %s\n\n", email, hash)
	fmt.Printf("INSERT INTO accounts (id, email, password_hash, name, role, created_at)\n")
	fmt.Printf("VALUES ('%s', '%s', '%s', 'Administrator', 'admin', now());\n",
		hex.EncodeToString(id[:]), email, hash)
}
