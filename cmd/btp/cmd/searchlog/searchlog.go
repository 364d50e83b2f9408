package searchlog

import (
	"github.com/spf13/cobra"
)

// SearchLogCmd - yerel arama günlüğü işlemlerinin üst komutu
var SearchLogCmd = &cobra.Command{
	Use:   "searchlog",
	Short: "Arama günlüğü",
	Long: `Üyelerle yapılan görüşmelerin yerel kaydı.

Günlük cihazda tutulur, sunucuya gönderilmez.`,
}
