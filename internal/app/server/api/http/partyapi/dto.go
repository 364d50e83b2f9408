package partyapi

import "github.com/AhmetHKarabulut/btp-app/internal/app/server/store"

type listInput struct {
	PageIndex int `query:"PageIndex"`
	PageSize  int `query:"PageSize"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Items []store.Person `json:"items"`
	Index int            `json:"index"`
	Size  int            `json:"size"`
	Count int            `json:"count"`
	Pages int            `json:"pages"`
}

type emptyInput struct{}

// Kategori uçları sarmalayıcı olmadan düz dizi döndürür; istemci iki
// biçimi de tanır.
type peopleOutput struct {
	Body []store.Person
}

type personInput struct {
	ID string `path:"id"`
}

type personOutput struct {
	Body store.Person
}

type updateInput struct {
	Body UpdateRequest
}

type UpdateRequest struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Path        string `json:"path,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	Address     string `json:"address,omitempty"`
	District    string `json:"district,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
