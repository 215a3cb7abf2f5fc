package main

import (
	"flag"
	"log"
	"os"

	"workorder-system/pkg/config"
	"workorder-system/pkg/database/postgresql"
	"workorder-system/seeders"
)

func main() {
	runAdmin := flag.Bool("admin", false, "create the initial administrator account")
	runDemo := flag.Bool("demo", false, "load demo companies and employees")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runAdmin && !*runDemo && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAdmin || *runAll {
		email := os.Getenv("ADMIN_EMAIL")
		if email == "" {
			email = "admin@workorder.local"
		}
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		if err := seeders.SeedAdminUser(dbPool, email, password); err != nil {
			log.Fatalf("admin seeder failed: %v", err)
		}
	}

	if *runDemo || *runAll {
		if err := seeders.SeedDemoData(dbPool); err != nil {
			log.Fatalf("demo seeder failed: %v", err)
		}
	}

	log.Println("seeding complete")
}
