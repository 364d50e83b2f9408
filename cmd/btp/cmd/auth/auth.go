package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - oturum işlemlerinin üst komutu
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Oturum yönetimi",
	Long:  `Giriş, çıkış, jeton yenileme ve oturum durumu.`,
}
