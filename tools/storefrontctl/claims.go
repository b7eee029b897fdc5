package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/YeshwantRaoB/organizon-web/identity"

	"github.com/spf13/cobra"
)

func newSetAdminClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-admin-claim <email>",
		Short: "Grant the admin claim to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := firebaseUsers(cmd.Context())
			if err != nil {
				return err
			}
			return setAdminClaim(cmd.Context(), users, args[0], cmd.OutOrStdout())
		},
	}
}

// setAdminClaim merges admin=true into the user's claims and revokes their
// refresh tokens so the next sign-in picks the claim up.
func setAdminClaim(ctx context.Context, users identity.UserAdmin, email string, out io.Writer) error {
	u, err := users.GetUserByEmail(ctx, email)
	if errors.Is(err, identity.ErrUserNotFound) {
		return fmt.Errorf("no user with email %s", email)
	}
	if err != nil {
		return fmt.Errorf("lookup %s: %w", email, err)
	}
	if u.Admin {
		fmt.Fprintf(out, "%s (%s) is already an admin\n", email, u.UID)
		return nil
	}
	if err := users.SetAdmin(ctx, u.UID, true); err != nil {
		return fmt.Errorf("set admin claim: %w", err)
	}
	if err := users.RevokeTokens(ctx, u.UID); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	fmt.Fprintf(out, "Granted admin to %s (%s). They must sign in again.\n", email, u.UID)
	return nil
}
