package member

import "fmt"

// MaxPage, count satırlık bir liste için gereken sayfa sayısını döndürür.
// Boş liste bile tek (boş) sayfa sayılır; sonuç hiçbir zaman 0 olmaz.
func MaxPage(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Page, tamamı bellekte olan sıralanmış listeden 1 tabanlı sayfayı keser.
// Aralık dışı sayfa isteği sessizce kırpılmaz, ErrPageOutOfRange ile
// reddedilir; yanlış dilim dönmektense hata dönmek çağıranın sorumluluğunu
// netleştirir. Son sayfa artakalan satırları taşır.
func Page(list []Member, page, pageSize int) ([]Member, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: geçersiz sayfa boyutu %d", ErrPageOutOfRange, pageSize)
	}

	max := MaxPage(len(list), pageSize)
	if page < 1 || page > max {
		return nil, fmt.Errorf("%w: sayfa %d (toplam %d)", ErrPageOutOfRange, page, max)
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(list) {
		start = len(list)
	}
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], nil
}
