package member

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize, metni Türkçe harf kurallarıyla küçük harfe çevirir.
// Standart ASCII küçültme İ/ı çiftlerini bozar: "İ" -> "i" ve "I" -> "ı"
// dönüşümü ancak Türkçe locale ile doğru çalışır. Fonksiyon saf ve
// deterministiktir, girdiyi kırpmaz.
func Normalize(s string) string {
	return cases.Lower(language.Turkish).String(s)
}
