// cmd/btp/cmd/auth/logout.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Oturumu kapat",
	Long: `Sunucuya çıkışı bildirir ve yerel oturum jetonunu siler.

Sunucuya ulaşılamasa bile yerel jeton her durumda temizlenir.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		app.Logout(ctx)
		fmt.Println("Oturum kapatıldı.")
		return nil
	},
}
