// cmd/btp/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sisteme giriş yap",
	Long: `Sunucuda kimlik doğrulaması yapar.

Girişten sonra oturum jetonu yerel olarak saklanır ve sonraki
komutlar bu jetonla çalışır.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Giriş ===")
		fmt.Println()

		fmt.Print("E-posta veya kullanıcı adı: ")
		var identifier string
		_, _ = fmt.Scanln(&identifier)

		fmt.Print("Parola: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("parola okunamadı: %w", err)
		}
		fmt.Println()

		fmt.Println("Kimlik doğrulanıyor...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		user, err := app.Login(ctx, identifier, string(password))
		if err != nil {
			return fmt.Errorf("giriş başarısız: %w", err)
		}

		fmt.Println()
		name := user.FullName
		if name == "" {
			name = identifier
		}
		color.Green("✓ Hoş geldiniz, %s", name)
		return nil
	},
}
