// cmd/btp/cmd/member/update.go
package member

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
	"github.com/AhmetHKarabulut/btp-app/internal/app/client"
)

var (
	updName     string
	updPhone    string
	updContact  string
	updProvince string
	updDistrict string
	updNote     string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Kişi bilgilerini güncelle",
	Long: `Kişinin mevcut kaydını çeker, yalnızca verilen bayrakları değiştirir
ve sonucu sunucuya yazar. Verilmeyen alanlar olduğu gibi kalır.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		id := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		current, _, err := app.Person(ctx, id)
		if err != nil {
			return fmt.Errorf("mevcut kayıt alınamadı: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			current.FullName = updName
		}
		if flags.Changed("phone") {
			current.Phone = updPhone
		}
		if flags.Changed("last-contact") {
			current.LastContact = updContact
		}
		if flags.Changed("province") {
			current.Province = updProvince
		}
		if flags.Changed("district") {
			current.District = updDistrict
		}
		if flags.Changed("note") {
			current.Note = updNote
		}

		updated, err := app.UpdatePerson(ctx, id, client.PersonUpdateFromMember(current))
		if err != nil {
			return fmt.Errorf("güncelleme başarısız: %w", err)
		}

		color.Green("✓ Kayıt güncellendi")
		fmt.Println()
		printPerson(updated)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updName, "name", "", "ad soyad")
	UpdateCmd.Flags().StringVar(&updPhone, "phone", "", "telefon numarası")
	UpdateCmd.Flags().StringVar(&updContact, "last-contact", "", "son görüşme tarihi (YYYY-AA-GG)")
	UpdateCmd.Flags().StringVar(&updProvince, "province", "", "il")
	UpdateCmd.Flags().StringVar(&updDistrict, "district", "", "ilçe")
	UpdateCmd.Flags().StringVar(&updNote, "note", "", "not")
}
