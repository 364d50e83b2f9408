// cmd/btp/cmd/searchlog/delete.go
package searchlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <kayıt-id>",
	Short: "Görüşme kaydını sil",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.SearchLog().Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("kayıt silinemedi: %w", err)
		}

		fmt.Println("Kayıt silindi.")
		return nil
	},
}
