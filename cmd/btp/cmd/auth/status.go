// cmd/btp/cmd/auth/status.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Oturum durumunu göster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		if app.IsAuthenticated() {
			fmt.Println("Kayıtlı bir oturum var. Geçerliliğine sunucu karar verir.")
		} else {
			fmt.Println("Oturum yok. Giriş için: btp auth login")
		}
		return nil
	},
}
