package member

import "strings"

// FormatPhone, serbest metin telefon numarasını Türk cep numarası yazımına
// çevirir: başında sıfır olan 11 hane, 4-3-2-2 gruplu ("0532 111 22 33").
// 10 haneli numaralara baştaki sıfır eklenir, 90 ülke koduyla gelen 12
// haneli numaralarda kod sıfıra çevrilir. Bu kalıplara uymayan uzun
// numaralar üçerli gruplanır, kısa olanlar rakamlarıyla döner; rakamı hiç
// olmayan girdi olduğu gibi geri verilir. Fonksiyon asla hata üretmez.
func FormatPhone(raw string) string {
	d := onlyDigits(raw)
	if d == "" {
		return raw
	}

	switch {
	case len(d) == 10:
		d = "0" + d
	case len(d) == 12 && strings.HasPrefix(d, "90"):
		d = "0" + d[2:]
	}

	if len(d) == 11 && d[0] == '0' {
		return d[:4] + " " + d[4:7] + " " + d[7:9] + " " + d[9:]
	}
	if len(d) >= 7 {
		return groupByThrees(d)
	}
	return d
}

func groupByThrees(d string) string {
	var b strings.Builder
	for i := 0; i < len(d); i++ {
		if i > 0 && i%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
