package main

import (
	"context"
	"fmt"

	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/phrazzld/foodshare-api/internal/platform/firebase"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
)

// openVerifier builds the token verifier named by auth.provider.
func (app *application) openVerifier(ctx context.Context) error {
	switch provider := app.config.Auth.Provider; provider {
	case config.ProviderFirebase:
		fbApp, err := app.sharedFirebaseApp(ctx)
		if err != nil {
			return err
		}
		verifier, err := firebase.NewVerifier(ctx, fbApp, app.logger)
		if err != nil {
			return err
		}
		app.verifier = verifier

	case config.ProviderJWT:
		verifier, err := auth.NewJWTVerifier(app.config.Auth)
		if err != nil {
			return fmt.Errorf("failed to create JWT verifier: %w", err)
		}
		app.verifier = verifier

	default:
		return fmt.Errorf("unsupported auth provider %q", provider)
	}

	return nil
}
