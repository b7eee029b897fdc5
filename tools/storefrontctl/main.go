// Command storefrontctl runs maintenance tasks against the storefront's
// document store and identity provider.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/YeshwantRaoB/organizon-web/common/logger"
	"github.com/YeshwantRaoB/organizon-web/database"
	"github.com/YeshwantRaoB/organizon-web/identity"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env.local", ".env")
	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Log.Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefrontctl",
		Short:         "Maintenance tasks for the Organizon storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSeedCmd(), newSetAdminClaimCmd())
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func connectMongo(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	return database.Connect(ctx, os.Getenv("MONGO_URI"), envOr("MONGO_DB", "organizon"))
}

func firebaseUsers(ctx context.Context) (identity.UserAdmin, error) {
	client, err := identity.NewFirebaseAuth(ctx, identity.FirebaseConfig{
		ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		ClientEmail:     os.Getenv("FIREBASE_CLIENT_EMAIL"),
		PrivateKey:      os.Getenv("FIREBASE_PRIVATE_KEY"),
		CredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
	})
	if err != nil {
		return nil, err
	}
	return identity.NewFirebaseUserAdmin(client), nil
}
