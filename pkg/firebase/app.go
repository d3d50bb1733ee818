package firebase

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App wraps the Firebase services the storefront consumes: the admin auth
// client (ID token verification) and the Firestore document store.
type App struct {
	authClient *auth.Client
	firestore  *firestore.Client
}

// NewApp initializes the Firebase app using the provided credentials file.
func NewApp(ctx context.Context, projectID, credentialsFile string) (*App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	log.Println("[Firebase] App initialized successfully")
	return &App{
		authClient: authClient,
		firestore:  fs,
	}, nil
}

// Auth returns the admin auth client.
func (a *App) Auth() *auth.Client {
	return a.authClient
}

// Firestore returns the Firestore client.
func (a *App) Firestore() *firestore.Client {
	return a.firestore
}

// Close releases the underlying Firestore connection.
func (a *App) Close() error {
	return a.firestore.Close()
}
