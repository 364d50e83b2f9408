package partyapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "members-get-list",
		Method:      http.MethodGet,
		Path:        "/api/Members/GetList",
		Summary:     "Sayfalı üye listesi",
		Tags:        []string{"party"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) sympathizersOp() huma.Operation {
	return huma.Operation{
		OperationID: "party-sympathizers",
		Method:      http.MethodGet,
		Path:        "/api/Party/Sympathizers",
		Summary:     "Sempatizan listesi",
		Tags:        []string{"party"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) membersOp() huma.Operation {
	return huma.Operation{
		OperationID: "party-members",
		Method:      http.MethodGet,
		Path:        "/api/Party/Members",
		Summary:     "Teşkilat üyesi listesi",
		Tags:        []string{"party"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) personOp() huma.Operation {
	return huma.Operation{
		OperationID: "party-person",
		Method:      http.MethodGet,
		Path:        "/api/Party/Person/{id}",
		Summary:     "Kişi detayı",
		Tags:        []string{"party"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

// Güncelleme yalnızca bu uçtan yapılır; istemci eski yolları sırayla
// deneyip buraya düşer.
func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "party-person-update",
		Method:      http.MethodPost,
		Path:        "/api/Party/Person/Update",
		Summary:     "Kişi bilgisi güncelle",
		Tags:        []string{"party"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
