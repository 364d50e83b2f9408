// cmd/btp/cmd/member/list.go
package member

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/appctx"
	"github.com/AhmetHKarabulut/btp-app/internal/app/client"
	"github.com/AhmetHKarabulut/btp-app/internal/domain/member"
)

var (
	listPage    int
	listName    string
	listPhone   string
	listSort    string
	listFormat  string
	listCatFlag string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Üye listesini görüntüle",
	Long: `Üye listesinin bir sayfasını sunucudan çeker.

Sayfalama sunucudadır: --name, --phone ve --sort yalnızca getirilen
sayfanın satırlarına uygulanır. --category ile sempatizan ya da
teşkilat listesinin tamamı alınır; bu kipte sayfa bayrağı yok sayılır.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appctx.From(cmd.Context())
		if err != nil {
			return err
		}

		key, err := member.ParseSortKey(listSort)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		if listCatFlag != "" {
			return listByCategory(ctx, app, key)
		}

		pager := app.Members()
		result, err := pager.Load(ctx, listPage)
		if err != nil {
			return fmt.Errorf("liste alınamadı: %w", err)
		}

		rows, err := pager.View(listName, listPhone, key)
		if err != nil {
			return err
		}

		if listFormat == "json" {
			return printMembersJSON(rows)
		}

		warnIfDemo(result.Source)
		printMembers(rows)
		fmt.Printf("\nSayfa %d/%d — toplam %d kayıt\n", result.PageIndex, result.Pages, result.Count)
		return nil
	},
}

func listByCategory(ctx context.Context, app *client.App, key member.SortKey) error {
	var (
		rows   []member.Member
		source client.Source
		err    error
	)

	switch listCatFlag {
	case "sempatizan":
		rows, source, err = app.Sympathizers(ctx)
	case "teskilat":
		rows, source, err = app.OrganizationMembers(ctx)
	default:
		return fmt.Errorf("bilinmeyen kategori: %q (sempatizan | teskilat)", listCatFlag)
	}
	if err != nil {
		return fmt.Errorf("liste alınamadı: %w", err)
	}

	rows = member.Sort(member.Filter(rows, listName, listPhone), key)

	if listFormat == "json" {
		return printMembersJSON(rows)
	}

	warnIfDemo(source)
	printMembers(rows)
	fmt.Printf("\nToplam %d kayıt\n", len(rows))
	return nil
}

func warnIfDemo(source client.Source) {
	if source == client.SourceDemo {
		color.Yellow("⚠ Sunucuya ulaşılamadı, çevrimdışı tanıtım verisi gösteriliyor")
		fmt.Println()
	}
}

func printMembersJSON(rows []member.Member) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func printMembers(rows []member.Member) {
	if len(rows) == 0 {
		fmt.Println("Kayıt bulunamadı")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tAD SOYAD\tTELEFON\tKATEGORİ\tSON GÖRÜŞME\tİL\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for _, m := range rows {
		last := m.LastContact
		if last == "" {
			last = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			m.ID,
			m.FullName,
			member.FormatPhone(m.Phone),
			string(m.Category),
			last,
			m.Province,
		)
	}

	w.Flush()
}

func init() {
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "sayfa numarası (1 tabanlı)")
	ListCmd.Flags().StringVarP(&listName, "name", "n", "", "isme göre süz")
	ListCmd.Flags().StringVarP(&listPhone, "phone", "t", "", "telefona göre süz")
	ListCmd.Flags().StringVarP(&listSort, "sort", "s", "", "sıralama (isim_az, isim_za, sonGorusme_eski, sonGorusme_yeni)")
	ListCmd.Flags().StringVarP(&listCatFlag, "category", "c", "", "kategori listesi (sempatizan | teskilat)")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "çıktı biçimi (table, json)")
}
