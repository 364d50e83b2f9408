// cmd/btp/cmd/notes/notes.go
package notes

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
)

var notesCount int

// NotesCmd - sunucudaki sürüm notlarını gösterir
var NotesCmd = &cobra.Command{
	Use:   "release-notes",
	Short: "Sürüm notlarını görüntüle",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		list, err := app.NewestReleaseNotes(ctx, notesCount)
		if err != nil {
			return fmt.Errorf("sürüm notları alınamadı: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("Sürüm notu yok")
			return nil
		}

		for _, n := range list {
			color.Cyan("%s — %s", n.Date, n.Title)
			fmt.Println(n.Body)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	NotesCmd.Flags().IntVarP(&notesCount, "count", "c", 3, "gösterilecek not sayısı")
}
