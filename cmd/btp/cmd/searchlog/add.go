// cmd/btp/cmd/searchlog/add.go
package searchlog

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
	"github.com/AhmetHKarabulut/btp-app/internal/domain/searchlog"
)

var (
	addPersonName string
	addSearcher   string
	addNotes      string
)

var AddCmd = &cobra.Command{
	Use:   "add <kişi-id>",
	Short: "Görüşme kaydı ekle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := app.SearchLog().Add(cmd.Context(), searchlog.Record{
			PersonID:     args[0],
			PersonName:   addPersonName,
			SearcherName: addSearcher,
			Notes:        addNotes,
		})
		if err != nil {
			return fmt.Errorf("kayıt eklenemedi: %w", err)
		}

		color.Green("✓ Görüşme kaydedildi (%s)", rec.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&addPersonName, "person-name", "", "görüşülen kişinin adı")
	AddCmd.Flags().StringVar(&addSearcher, "searcher", "", "arayan saha çalışanı")
	AddCmd.Flags().StringVar(&addNotes, "note", "", "görüşme notu")
}
