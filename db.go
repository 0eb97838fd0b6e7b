package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"blogbox/app/config"
	"blogbox/app/repositories"
)

// handleDbCommand handles database admin subcommands
func handleDbCommand(args []string) {
	if len(args) < 1 {
		printDbHelp()
		os.Exit(1)
	}

	cfg := config.Load()

	cmd := args[0]
	switch cmd {
	case "clean":
		clean(cfg.DatabasePath)
	case "init":
		initDb(cfg.DatabasePath)
	case "backup":
		backup(cfg.DatabasePath)
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(cfg.DatabasePath, args[1])
	case "help":
		printDbHelp()
	default:
		fmt.Printf("Unknown db command: %s\n\n", cmd)
		printDbHelp()
		os.Exit(1)
	}
}

// printDbHelp prints help for db subcommands
func printDbHelp() {
	helpText := `Usage: blogbox db <command> [options]

Commands:
  clean                          Remove the database
  init                           Initialize a new empty database
  backup                         Create a backup of the database
  restore [file]                 Restore the database from a backup
  help                           Display this help message
`
	fmt.Println(helpText)
}

// clean removes the database
func clean(dbPath string) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(dbPath); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")
}

// initDb initializes a new empty database
func initDb(dbPath string) {
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	store, err := repositories.OpenStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	fmt.Println("Database initialized successfully")
}

// backup creates a backup of the database
func backup(dbPath string) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := "data/backups"
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		log.Fatalf("Failed to create backup directory: %v", err)
	}

	store, err := repositories.OpenStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		log.Fatalf("Failed to create backup file: %v", err)
	}
	defer f.Close()

	if err := store.Backup(f); err != nil {
		log.Fatalf("Failed to backup database: %v", err)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup
func restore(dbPath, backupFile string) {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(dbPath); err != nil {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	store, err := repositories.OpenStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		log.Fatalf("Failed to open backup file: %v", err)
	}
	defer f.Close()

	if err := store.Restore(f); err != nil {
		log.Fatalf("Failed to restore database: %v", err)
	}

	fmt.Println("Database restored successfully")
}
