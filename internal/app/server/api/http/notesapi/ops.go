package notesapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) newestOp() huma.Operation {
	return huma.Operation{
		OperationID: "release-notes-newest",
		Method:      http.MethodGet,
		Path:        "/api/ReleaseNotes/GetNewestReleaseNotes",
		Summary:     "En yeni sürüm notları",
		Tags:        []string{"release-notes"},
		Middlewares: h.middleware,
	}
}
