package authapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/Auth/Login",
		Summary:     "Kullanıcı girişi",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-logout",
		Method:      http.MethodPost,
		Path:        "/api/Auth/Logout",
		Summary:     "Oturumu kapat",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) refreshOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-refresh",
		Method:      http.MethodGet,
		Path:        "/api/Auth/RefreshToken",
		Summary:     "Erişim jetonunu yenile",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) revokeOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-revoke",
		Method:      http.MethodPut,
		Path:        "/api/Auth/RevokeToken",
		Summary:     "Yenileme jetonunu iptal et",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}
