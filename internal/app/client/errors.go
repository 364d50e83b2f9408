package client

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Kind, istek hatalarını arayüzün tepki vereceği sınıflara ayırır.
type Kind int

const (
	// KindUnreachable - hiç yanıt alınamadı (ağ hatası, zaman aşımı)
	KindUnreachable Kind = iota
	// KindRateLimited - 429, tüm denemeler tükendi
	KindRateLimited
	// KindUnauthorized - 401, yerel oturum da temizlenir
	KindUnauthorized
	// KindValidationRejected - 400, sunucunun mesajı mümkünse aynen taşınır
	KindValidationRejected
	// KindNotFound - 404
	KindNotFound
	// KindForbidden - 403
	KindForbidden
	// KindServerFault - 5xx
	KindServerFault
	// KindUpdateRouteExhausted - güncelleme rotalarının hepsi reddetti
	KindUpdateRouteExhausted
)

// APIError, istek katmanının dışarı sızdırdığı tek hata şeklidir: sınıf,
// alınan HTTP durumu (yanıt yoksa 0) ve kullanıcıya gösterilebilir mesaj.
// Ham taşıma hataları Unwrap ile erişilebilir kalır ama asla doğrudan
// kullanıcıya gösterilmez.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	err     error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.err }

// Kullanıcıya gösterilen varsayılan mesajlar.
var kindMessages = map[Kind]string{
	KindUnreachable:          "Sunucuya ulaşılamıyor, internet bağlantınızı kontrol edin",
	KindRateLimited:          "Çok fazla istek gönderildi, lütfen biraz bekleyip tekrar deneyin",
	KindUnauthorized:         "Oturum süreniz doldu, lütfen tekrar giriş yapın",
	KindValidationRejected:   "Geçersiz istek, lütfen girdiğiniz bilgileri kontrol edin",
	KindNotFound:             "İstenen kayıt bulunamadı",
	KindForbidden:            "Bu işlem için yetkiniz yok",
	KindServerFault:          "Sunucu hatası, lütfen daha sonra tekrar deneyin",
	KindUpdateRouteExhausted: "Kayıt güncellenemedi",
}

func unreachable(err error) *APIError {
	return &APIError{Kind: KindUnreachable, Message: kindMessages[KindUnreachable], err: err}
}

// classifyStatus, yanıt veren bir isteğin durum kodunu taksonomiye çevirir.
// 2xx için nil döner. 400'de sunucunun kendi mesajı (BusinessException
// ayıklaması dahil) mümkün olduğunca korunur.
func classifyStatus(status int, body []byte) *APIError {
	if status >= 200 && status < 300 {
		return nil
	}

	var kind Kind
	switch {
	case status == 400:
		kind = KindValidationRejected
	case status == 401:
		kind = KindUnauthorized
	case status == 403:
		kind = KindForbidden
	case status == 404:
		kind = KindNotFound
	case status == 429:
		kind = KindRateLimited
	case status >= 500:
		kind = KindServerFault
	default:
		kind = KindServerFault
	}

	msg := kindMessages[kind]
	if kind == KindValidationRejected {
		if parsed := parseBackendMessage(body); parsed != "" {
			msg = parsed
		}
	}

	return &APIError{Kind: kind, Status: status, Message: msg}
}

var (
	businessExceptionRe = regexp.MustCompile(`BusinessException:\s*([^.]+)`)
	exceptionLineRe     = regexp.MustCompile(`^[A-Za-z.]*Exception[^:]*:\s*(.+)`)
)

// parseBackendMessage, arka ucun hata gövdesinden insana gösterilebilir bir
// mesaj çıkarmaya çalışır. Şekil garanti edilmediği için sırayla denenir:
// bilinen JSON alanları, BusinessException kalıbı, yığın izi olmayan kısa
// düz metin. Hiçbiri tutmazsa boş döner ve varsayılan mesaj kullanılır.
func parseBackendMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, field := range []string{"message", "detail", "title", "error"} {
			if s, ok := obj[field].(string); ok && s != "" {
				return extractExceptionText(s)
			}
		}
		if errs, ok := obj["errors"].(map[string]any); ok {
			for _, v := range errs {
				switch vv := v.(type) {
				case string:
					return vv
				case []any:
					if len(vv) > 0 {
						if s, ok := vv[0].(string); ok {
							return s
						}
					}
				}
			}
		}
		return ""
	}

	// JSON değilse düz metin olarak dene
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		raw = s
	}
	return extractExceptionText(raw)
}

func extractExceptionText(s string) string {
	if m := businessExceptionRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	firstLine := s
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		firstLine = s[:i]
	}
	if m := exceptionLineRe.FindStringSubmatch(firstLine); m != nil {
		return strings.TrimSpace(m[1])
	}
	// Yığın izine benzemeyen kısa metinler olduğu gibi gösterilebilir
	if len(s) < 200 && !strings.Contains(s, " at ") {
		return s
	}
	return ""
}
