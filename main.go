package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/garagehub/servicing-app/db"
	"github.com/garagehub/servicing-app/models"
	"github.com/garagehub/servicing-app/routes"
)

func main() {
	seed := flag.Bool("seed", false, "reset the database with the sample fixtures and exit")
	flag.Parse()

	ctx := context.Background()
	database, err := db.Connect(ctx)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if *seed {
		if err := db.Seed(ctx, database, db.SampleAccounts()); err != nil {
			log.Fatal("Failed to seed database: ", err)
		}
		log.Println("Database seeded")
		return
	}

	store := models.NewStore(database)
	app := routes.NewApp(store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
