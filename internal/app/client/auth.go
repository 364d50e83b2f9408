package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// UserInfo, sunucunun giriş yanıtında döndürdüğü kullanıcı özetidir.
type UserInfo struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// loginResponse, farklı kurulumların farklı alan adlarıyla döndürdüğü giriş
// yanıtını tek şekilde toplar; jeton alanlarından ilk dolu olan kullanılır.
type loginResponse struct {
	Token         string          `json:"token,omitempty"`
	AccessToken   string          `json:"accessToken,omitempty"`
	AccessTokenSC string          `json:"access_token,omitempty"`
	RefreshToken  string          `json:"refreshToken,omitempty"`
	RefreshSC     string          `json:"refresh_token,omitempty"`
	User          json.RawMessage `json:"user,omitempty"`
}

func (r loginResponse) accessToken() string {
	for _, t := range []string{r.Token, r.AccessToken, r.AccessTokenSC} {
		if t != "" {
			return t
		}
	}
	return ""
}

func (r loginResponse) refreshToken() string {
	if r.RefreshToken != "" {
		return r.RefreshToken
	}
	return r.RefreshSC
}

// Login, kullanıcıyı doğrular ve oturumu kalıcılaştırır. Kullanıcının
// girdiği tek kimlik hem email hem username alanında gönderilir; arka uç
// hangisini tanıyorsa onu kullanır.
func (h *httpClient) Login(ctx context.Context, identifier, password string) (UserInfo, error) {
	body := struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}{
		Email:    identifier,
		Username: identifier,
		Password: password,
	}

	status, data, err := h.doRequest(ctx, http.MethodPost, "/api/Auth/Login", nil, body)
	if err != nil {
		return UserInfo{}, err
	}
	if err := h.check(status, data); err != nil {
		return UserInfo{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return UserInfo{}, &APIError{Kind: KindServerFault, Status: status, Message: kindMessages[KindServerFault], err: err}
	}

	token := resp.accessToken()
	if token == "" {
		h.log.Error("giriş yanıtında jeton yok", "status", status)
		return UserInfo{}, &APIError{Kind: KindServerFault, Status: status, Message: "Sunucudan oturum jetonu alınamadı"}
	}

	h.session.SetCredentials(Credentials{
		AccessToken:  token,
		RefreshToken: resp.refreshToken(),
		User:         resp.User,
	})

	var user UserInfo
	if len(resp.User) > 0 {
		_ = json.Unmarshal(resp.User, &user)
	}

	h.log.Info("giriş başarılı", "user", user.Email)
	return user, nil
}

// Logout, sunucuya çıkış bildirir ve her durumda yerel oturumu temizler.
// Sunucuya ulaşılamaması çıkışı engellemez.
func (h *httpClient) Logout(ctx context.Context) {
	status, data, err := h.doRequest(ctx, http.MethodPost, "/api/Auth/Logout", nil, nil)
	if err != nil {
		h.log.Warn("çıkış isteği sunucuya iletilemedi", "error", err)
	} else if apiErr := classifyStatus(status, data); apiErr != nil {
		h.log.Warn("sunucu çıkış isteğini reddetti", "status", status)
	}

	h.session.Clear()
}

// RefreshSession, yenileme jetonuyla yeni bir erişim jetonu alır.
func (h *httpClient) RefreshSession(ctx context.Context) error {
	refresh := h.session.RefreshToken()
	if refresh == "" {
		return &APIError{Kind: KindUnauthorized, Message: kindMessages[KindUnauthorized]}
	}

	headers := map[string]string{"X-Refresh-Token": refresh}
	status, data, err := h.doRequestWithHeaders(ctx, http.MethodGet, "/api/Auth/RefreshToken", nil, nil, headers)
	if err != nil {
		return err
	}
	if err := h.check(status, data); err != nil {
		return err
	}

	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return &APIError{Kind: KindServerFault, Status: status, Message: kindMessages[KindServerFault], err: err}
	}
	token := resp.accessToken()
	if token == "" {
		return &APIError{Kind: KindServerFault, Status: status, Message: "Sunucudan oturum jetonu alınamadı"}
	}

	newRefresh := resp.refreshToken()
	if newRefresh == "" {
		newRefresh = refresh
	}
	h.session.SetCredentials(Credentials{
		AccessToken:  token,
		RefreshToken: newRefresh,
		User:         resp.User,
	})

	h.log.Info("oturum yenilendi")
	return nil
}

// RevokeToken, yenileme jetonunu sunucu tarafında geçersiz kılar.
func (h *httpClient) RevokeToken(ctx context.Context) error {
	refresh := h.session.RefreshToken()
	if refresh == "" {
		return nil
	}

	body := struct {
		Token string `json:"token"`
	}{Token: refresh}

	status, data, err := h.doRequest(ctx, http.MethodPut, "/api/Auth/RevokeToken", nil, body)
	if err != nil {
		return err
	}
	return h.check(status, data)
}

// doRequestWithHeaders, ek başlık gerektiren tekil uçlar içindir; geri kalan
// davranışı doRequest ile aynıdır.
func (h *httpClient) doRequestWithHeaders(ctx context.Context, method, path string, query url.Values, body any, headers map[string]string) (int, []byte, error) {
	return h.doRaw(ctx, method, path, query, body, headers)
}
