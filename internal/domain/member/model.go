package member

// Category, bir kişinin parti içindeki konumunu belirtir.
type Category string

const (
	// CategoryOrganization - teşkilat üyesi (il/ilçe yapısında görevli)
	CategoryOrganization Category = "Teşkilat"
	// CategorySympathizer - sempatizan
	CategorySympathizer Category = "Sempatizan"
)

// Member, üye listesinin kanonik satır modelidir. Arka uçtan gelen ham
// kayıtlar MapBackendItem ile bu şekle indirgenir; liste süzme, sıralama ve
// sayfalama hep bu model üzerinde çalışır.
type Member struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	Phone       string   `json:"phone"`
	Category    Category `json:"category"`
	LastContact string   `json:"lastContact,omitempty"` // ISO tarih (YYYY-MM-DD), boş olabilir
	Province    string   `json:"province,omitempty"`
	District    string   `json:"district,omitempty"`
	Note        string   `json:"note,omitempty"`
}
