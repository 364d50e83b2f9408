// cmd/btp/cmd/auth/refresh.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
)

var RefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Oturum jetonunu yenile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		if err := app.RefreshSession(ctx); err != nil {
			return fmt.Errorf("jeton yenilenemedi: %w", err)
		}

		fmt.Println("Oturum yenilendi.")
		return nil
	},
}
