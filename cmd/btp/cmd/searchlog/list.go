// cmd/btp/cmd/searchlog/list.go
package searchlog

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Görüşme kayıtlarını listele",
	Long:  `Yerel günlükteki kayıtları en yeniden eskiye doğru listeler.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		records, err := app.SearchLog().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("kayıtlar okunamadı: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("Günlük boş")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tKİŞİ\tARAYAN\tTARİH\tNOT\t\n")
		fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

		for _, rec := range records {
			name := rec.PersonName
			if name == "" {
				name = rec.PersonID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
				rec.ID,
				name,
				rec.SearcherName,
				rec.Date.Format("2006-01-02 15:04"),
				rec.Notes,
			)
		}

		w.Flush()
		fmt.Printf("\nToplam %d kayıt\n", len(records))
		return nil
	},
}
