package firebase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// DecodeServiceKey decodes a base64 service account document and checks that
// it is JSON naming a project.
func DecodeServiceKey(encoded string) ([]byte, string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, "", fmt.Errorf("service key is not valid base64: %w", err)
	}

	var key struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(raw, &key); err != nil {
		return nil, "", fmt.Errorf("service key is not valid JSON: %w", err)
	}
	if key.ProjectID == "" {
		return nil, "", fmt.Errorf("service key has no project_id")
	}

	return raw, key.ProjectID, nil
}

// NewApp initializes a Firebase app from a base64 service account key.
func NewApp(ctx context.Context, encodedKey string) (*fb.App, error) {
	creds, projectID, err := DecodeServiceKey(encodedKey)
	if err != nil {
		return nil, err
	}

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: projectID}, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}

// NewFirestore opens a Firestore client for app's project.
// The caller must Close it.
func NewFirestore(ctx context.Context, app *fb.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}
	return client, nil
}
