package member

import (
	"github.com/spf13/cobra"
)

// MemberCmd - üye listesi işlemlerinin üst komutu
var MemberCmd = &cobra.Command{
	Use:   "member",
	Short: "Üye yönetimi",
	Long:  `Üye listesini görüntüleme, süzme, sıralama ve güncelleme.`,
}
