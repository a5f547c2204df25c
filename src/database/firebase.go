package database

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// InitFirestore เปิด Firestore client ผ่าน Firebase Admin SDK
func InitFirestore(ctx context.Context, projectID, credentialsPath string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		log.Println("✅ Firebase credentials from:", credentialsPath)
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	} else {
		log.Println("⚠️ No explicit Firebase credentials, using application default")
	}

	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firestore: %w", err)
	}
	log.Println("✅ Firestore initialized successfully")
	return fs, nil
}
