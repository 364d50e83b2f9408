// cmd/btp/cmd/member/get.go
package member

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
	"github.com/AhmetHKarabulut/btp-app/internal/domain/member"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Kişi detayını görüntüle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		m, source, err := app.Person(ctx, args[0])
		if err != nil {
			return fmt.Errorf("kişi getirilemedi: %w", err)
		}

		warnIfDemo(source)
		printPerson(m)
		return nil
	},
}

func printPerson(m member.Member) {
	fmt.Printf("ID           : %s\n", m.ID)
	fmt.Printf("Ad Soyad     : %s\n", m.FullName)
	fmt.Printf("Telefon      : %s\n", member.FormatPhone(m.Phone))
	fmt.Printf("Kategori     : %s\n", m.Category)
	if m.LastContact != "" {
		fmt.Printf("Son Görüşme  : %s\n", m.LastContact)
	}
	if m.Province != "" {
		fmt.Printf("İl           : %s\n", m.Province)
	}
	if m.District != "" {
		fmt.Printf("İlçe         : %s\n", m.District)
	}
	if m.Note != "" {
		fmt.Printf("Not          : %s\n", m.Note)
	}
}
