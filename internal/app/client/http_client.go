package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/internal/app/client/config"
)

const (
	// 429 için en fazla 3 tekrar; beklemeler 500ms'den başlayıp ikiye katlanır
	maxRetries       = 3
	retryBaseBackoff = 500 * time.Millisecond
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	session   *Session
	userAgent string

	// testlerde gerçek beklemeyi kaydedilebilir bir sahteyle değiştirmek için
	backoff func(ctx context.Context, d time.Duration) error
}

func NewHTTPClient(cfg *config.Config, session *Session, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log.With(slog.String("component", "http_client")),
		baseURL:   scheme + cfg.ServerAddress,
		session:   session,
		userAgent: "BTP-Client/1.0",
		backoff:   sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// doRequest, isteği kurar, oturum jetonu varsa Bearer başlığını ekler ve
// yanıtın durum koduyla gövdesini döndürür. Jetonun olmaması hata değildir;
// yetki kararı sunucuya bırakılır. Yalnızca 429 tekrarlanır: en fazla
// maxRetries deneme, 500/1000/2000ms beklemelerle. Hiç yanıt alınamazsa
// KindUnreachable sınıfında *APIError döner; ham taşıma hatası dışarı sızmaz.
func (h *httpClient) doRequest(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	return h.doRaw(ctx, method, path, query, body, nil)
}

func (h *httpClient) doRaw(ctx context.Context, method, path string, query url.Values, body any, headers map[string]string) (int, []byte, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("istek gövdesi kodlama: %w", err)
		}
		payload = data
	}

	fullURL := h.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
		if err != nil {
			return 0, nil, fmt.Errorf("istek oluşturma: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", h.userAgent)
		if token := h.session.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		h.log.Debug("istek gönderiliyor", "method", method, "url", fullURL, "attempt", attempt+1)

		resp, err := h.client.Do(req)
		if err != nil {
			h.log.Warn("sunucuya ulaşılamadı", "method", method, "url", fullURL, "error", err)
			return 0, nil, unreachable(err)
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return 0, nil, unreachable(err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			wait := retryBaseBackoff << attempt
			h.log.Debug("istek sınırına takıldı, tekrar denenecek", "wait", wait, "attempt", attempt+1)
			if err := h.backoff(ctx, wait); err != nil {
				return 0, nil, unreachable(err)
			}
			continue
		}

		h.log.Debug("yanıt alındı", "status", resp.StatusCode, "size", len(data))
		return resp.StatusCode, data, nil
	}
}

// check, durum kodunu taksonomiye çevirir; 401'de yerel oturum da düşer.
func (h *httpClient) check(status int, body []byte) error {
	apiErr := classifyStatus(status, body)
	if apiErr == nil {
		return nil
	}
	if apiErr.Kind == KindUnauthorized {
		h.log.Info("sunucu oturumu reddetti, yerel oturum temizleniyor")
		h.session.Clear()
	}
	return apiErr
}

// get, GET isteği atar, hatayı sınıflar ve gövdeyi verilen hedefe çözer.
func (h *httpClient) get(ctx context.Context, path string, query url.Values, result any) error {
	status, data, err := h.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := h.check(status, data); err != nil {
		return err
	}
	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("yanıt çözme: %w", err)
		}
	}
	return nil
}
