package member

import "strings"

// Filter, liste ekranının arama kutularını uygular: isim için Türkçe
// küçük harfe indirgenmiş alt dize eşleşmesi, telefon için tüm boşluklar
// atılmış alt dize eşleşmesi. İki sorgu da doluysa ikisi birden sağlanmalı.
// Boş (veya yalnızca boşluk) sorgular kısıt getirmez. Girdi dilimi
// değiştirilmez, yeni bir dilim döner.
func Filter(list []Member, nameQuery, phoneQuery string) []Member {
	name := Normalize(strings.TrimSpace(nameQuery))
	phone := stripSpaces(phoneQuery)

	out := make([]Member, 0, len(list))
	for _, m := range list {
		if name != "" && !strings.Contains(Normalize(m.FullName), name) {
			continue
		}
		if phone != "" && !strings.Contains(stripSpaces(m.Phone), phone) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
