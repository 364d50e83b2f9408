package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/Health",
		Summary:     "Sağlık denetimi",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
