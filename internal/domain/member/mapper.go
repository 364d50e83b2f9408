package member

import (
	"encoding/json"
	"strconv"
	"strings"
)

// BackendItem, parti arka ucunun döndürdüğü gevşek satır şeklidir. Alanların
// hangileri dolu geleceği kuruluma göre değişir; MapBackendItem hepsini
// kanonik Member modeline indirger.
type BackendItem struct {
	ID          any    `json:"id,omitempty"` // string veya sayı gelebilir
	FullName    string `json:"fullName,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Path        any    `json:"path,omitempty"` // teşkilat işareti; tip garanti edilmiyor
	BirthDate   string `json:"birthDate,omitempty"`
	Address     string `json:"address,omitempty"`
	District    string `json:"district,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// MapBackendItem, ham arka uç kaydını kanonik satıra çevirir. fallbackID,
// kayıtta kullanılabilir bir kimlik yoksa devreye girer (genelde satırın
// sayfalı küme içindeki mutlak konumu). İkinci dönüş değeri kategori
// sezgisinin kesin sonuç verip vermediğini bildirir; false dönerse çağıran
// uyarı loglamalıdır. Fonksiyon hiçbir girdi için hata üretmez.
func MapBackendItem(it BackendItem, fallbackID string) (Member, bool) {
	name := strings.TrimSpace(it.FullName)
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(it.FirstName) + " " + strings.TrimSpace(it.LastName))
	}

	category, conclusive := CategoryFromPath(it.Path)

	return Member{
		ID:          idString(it.ID, fallbackID),
		FullName:    name,
		Phone:       it.PhoneNumber,
		Category:    category,
		LastContact: datePart(it.BirthDate),
		Province:    it.Address,
		District:    it.District,
		Note:        it.Notes,
	}, conclusive
}

// CategoryFromPath, arka ucun "path" alanından kategori çıkaran tek
// fonksiyondur; sezgi bilerek burada yalıtıldı, başka yere kopyalanmamalı.
// Dolu bir işaret teşkilat üyeliği, boş/eksik işaret sempatizan demektir.
// Alan beklenmedik bir tiple gelirse varsayılan sempatizan kategorisi
// seçilir ve ikinci dönüş değeri false olur.
func CategoryFromPath(path any) (Category, bool) {
	switch v := path.(type) {
	case nil:
		return CategorySympathizer, true
	case string:
		if strings.TrimSpace(v) != "" {
			return CategoryOrganization, true
		}
		return CategorySympathizer, true
	case bool:
		if v {
			return CategoryOrganization, true
		}
		return CategorySympathizer, true
	case float64:
		if v != 0 {
			return CategoryOrganization, true
		}
		return CategorySympathizer, true
	}
	return CategorySympathizer, false
}

// datePart, "2024-05-01T00:00:00" gibi zaman damgalarından yalnızca tarih
// kısmını alır; T içermeyen değerler olduğu gibi döner.
func datePart(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

func idString(v any, fallback string) string {
	switch id := v.(type) {
	case string:
		if id != "" {
			return id
		}
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	}
	return fallback
}
