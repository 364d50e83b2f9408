package member

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey, liste sıralama seçeneklerinden birini seçer. Değerler liste
// ekranındaki seçici ile aynıdır.
type SortKey string

const (
	SortNone            SortKey = ""
	SortLastContactAsc  SortKey = "sonGorusme_eski"
	SortLastContactDesc SortKey = "sonGorusme_yeni"
	SortNameAsc         SortKey = "isim_az"
	SortNameDesc        SortKey = "isim_za"
)

// ParseSortKey, kullanıcıdan gelen sıralama anahtarını doğrular.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortNone, SortLastContactAsc, SortLastContactDesc, SortNameAsc, SortNameDesc:
		return SortKey(s), nil
	}
	return SortNone, fmt.Errorf("bilinmeyen sıralama anahtarı: %q", s)
}

// Sort, listeyi verilen anahtara göre sıralanmış yeni bir dilim olarak
// döndürür; girdi hiçbir durumda değiştirilmez. Sıralama kararlıdır: eşit
// anahtarlı satırlar girdi sırasını korur. İsim anahtarları Türkçe alfabe
// sırası kullanır (Ç < Ö vb. doğru yere düşer). Tarihi eksik veya
// çözümlenemeyen satırlar her iki yönde de geçerli tarihlerin ARKASINA
// gider; böylece yön değişince bozuk kayıtlar listenin başına sıçramaz.
func Sort(list []Member, key SortKey) []Member {
	out := make([]Member, len(list))
	copy(out, list)

	switch key {
	case SortLastContactAsc, SortLastContactDesc:
		desc := key == SortLastContactDesc
		sort.SliceStable(out, func(i, j int) bool {
			ti, iok := parseContactDate(out[i].LastContact)
			tj, jok := parseContactDate(out[j].LastContact)
			if iok != jok {
				return iok
			}
			if !iok {
				return false
			}
			if desc {
				return tj.Before(ti)
			}
			return ti.Before(tj)
		})
	case SortNameAsc, SortNameDesc:
		col := collate.New(language.Turkish, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			cmp := col.CompareString(out[i].FullName, out[j].FullName)
			if key == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	return out
}

func parseContactDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
