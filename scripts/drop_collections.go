package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func main() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI environment variable is required")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "drivebox"
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	defer func() { _ = client.Disconnect(context.Background()) }() // Error ignored: script exiting

	db := client.Database(dbName)
	for _, name := range []string{"files", "folders", "users"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Fatalf("Failed to drop collection %s: %v", name, err)
		}
	}

	fmt.Printf("All collections dropped successfully (database: %s)\n", dbName)
}
