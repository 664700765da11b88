// Seeding helper: prints bcrypt hashes for the passwords given on the
// command line, for inserting users directly with psql.
//
//	go run scripts/genhash.go 'hunter2' 'correct horse'
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, string(hash))
	}
}
