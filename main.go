package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"blogbox/app/config"
	"blogbox/app/repositories"
	"blogbox/app/routes"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogbox version %s\n", cliVersion)
	case "serve":
		serve()
	case "db":
		handleDbCommand(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogbox <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog API server.
  db <subcommand>                Manage the database (clean, init, backup, restore).

Configuration is read from the environment (a .env file is honored):
  PORT            Listen port (default 8080)
  DATABASE_PATH   Badger database directory (default data/badger)
  JWT_SECRET      Session token signing secret
`
	fmt.Println(helpText)
}

// serve starts the blog API server.
func serve() {
	cfg := config.Load()

	store, err := repositories.OpenStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	router := routes.SetupRoutes(store.DB(), []byte(cfg.JWTSecret))

	log.Printf("Starting blog API server on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
