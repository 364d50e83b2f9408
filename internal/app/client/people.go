package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AhmetHKarabulut/btp-app/internal/domain/member"
)

// Source, bir listenin canlı sunucudan mı yoksa çevrimdışı demo verisinden
// mi geldiğini açıkça işaretler; gösterim katmanı bu bayrağı kullanıcıya
// belli etmek zorundadır.
type Source string

const (
	SourceLive Source = "live"
	SourceDemo Source = "demo"
)

// ListResult, sunucu güdümlü üye listesinin bir sayfası ve sayfalama
// üst verisidir.
type ListResult struct {
	Members   []member.Member
	Source    Source
	PageIndex int
	PageSize  int
	Count     int
	Pages     int
}

// getListResponse, GetList ucunun zarfıdır; bazı kurulumlar zarf yerine çıplak
// dizi döndürdüğü için çözümleme iki aşamalıdır.
type getListResponse struct {
	Items []member.BackendItem `json:"items"`
	Count int                  `json:"count"`
	Pages int                  `json:"pages"`
}

// FetchMemberPage, üye listesinin bir sayfasını sunucudan çeker. Sayfalama
// sunucudadır: dönen satırlar yalnızca istenen sayfaya aittir ve süzme/
// sıralama da yalnızca bu satırlara uygulanabilir. Okuma başarısız olursa
// istemci çevrimdışı demo kümesine düşer ve sonucu SourceDemo ile
// işaretler; sessiz bir ikame yoktur.
func (h *httpClient) FetchMemberPage(ctx context.Context, pageIndex, pageSize int) (ListResult, error) {
	query := url.Values{}
	query.Set("PageIndex", strconv.Itoa(pageIndex))
	query.Set("PageSize", strconv.Itoa(pageSize))

	status, data, err := h.doRequest(ctx, http.MethodGet, "/api/Members/GetList", query, nil)
	if err != nil {
		return h.demoPage(pageIndex, pageSize, err)
	}
	if err := h.check(status, data); err != nil {
		return h.demoPage(pageIndex, pageSize, err)
	}

	items, count, pages, err := parseListBody(data)
	if err != nil {
		h.log.Error("üye listesi yanıtı çözülemedi", "error", err)
		return h.demoPage(pageIndex, pageSize, err)
	}
	if count == 0 {
		count = len(items)
	}
	if pages == 0 {
		pages = member.MaxPage(count, pageSize)
	}

	members := h.mapItems(items, pageIndex, pageSize)
	return ListResult{
		Members:   members,
		Source:    SourceLive,
		PageIndex: pageIndex,
		PageSize:  pageSize,
		Count:     count,
		Pages:     pages,
	}, nil
}

func parseListBody(data []byte) ([]member.BackendItem, int, int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []member.BackendItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, 0, 0, fmt.Errorf("liste gövdesi çözme: %w", err)
		}
		return items, len(items), 0, nil
	}

	var resp getListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, 0, 0, fmt.Errorf("liste zarfı çözme: %w", err)
	}
	return resp.Items, resp.Count, resp.Pages, nil
}

// mapItems, ham kayıtları kanonik modele çevirir; kimliği olmayan satırlar
// sayfa içindeki mutlak konumlarından türeyen bir kimlik alır.
func (h *httpClient) mapItems(items []member.BackendItem, pageIndex, pageSize int) []member.Member {
	members := make([]member.Member, 0, len(items))
	for i, it := range items {
		fallbackID := fmt.Sprintf("idx-%d", (pageIndex-1)*pageSize+i)
		m, conclusive := member.MapBackendItem(it, fallbackID)
		if !conclusive {
			h.log.Warn("kategori işareti tanınmadı, sempatizan varsayıldı", "member_id", m.ID)
		}
		members = append(members, m)
	}
	return members
}

// demoPage, okuma hatasında çevrimdışı kümenin istenen sayfasını üretir.
// İstenen sayfa demo kümesinde yoksa ilk sayfa gösterilir; kullanıcıyı
// hatayla baş başa bırakmaktansa eldeki veri açık işaretle sunulur.
func (h *httpClient) demoPage(pageIndex, pageSize int, cause error) (ListResult, error) {
	h.log.Warn("üye listesi alınamadı, demo verisine geçiliyor", "error", cause)

	all := DemoMembers()
	page, err := member.Page(all, pageIndex, pageSize)
	if err != nil {
		pageIndex = 1
		page, _ = member.Page(all, 1, pageSize)
	}

	return ListResult{
		Members:   page,
		Source:    SourceDemo,
		PageIndex: pageIndex,
		PageSize:  pageSize,
		Count:     len(all),
		Pages:     member.MaxPage(len(all), pageSize),
	}, nil
}

// Sympathizers, sempatizan listesinin tamamını döndürür; hata durumunda
// demo kümesinin sempatizan kısmına düşer.
func (h *httpClient) Sympathizers(ctx context.Context) ([]member.Member, Source, error) {
	return h.partyList(ctx, "/api/Party/Sympathizers", member.CategorySympathizer)
}

// OrganizationMembers, teşkilat listesinin tamamını döndürür.
func (h *httpClient) OrganizationMembers(ctx context.Context) ([]member.Member, Source, error) {
	return h.partyList(ctx, "/api/Party/Members", member.CategoryOrganization)
}

func (h *httpClient) partyList(ctx context.Context, path string, fallbackCat member.Category) ([]member.Member, Source, error) {
	var items []member.BackendItem
	if err := h.get(ctx, path, nil, &items); err != nil {
		h.log.Warn("liste alınamadı, demo verisine geçiliyor", "path", path, "error", err)
		return demoByCategory(fallbackCat), SourceDemo, nil
	}
	return h.mapItems(items, 1, len(items)+1), SourceLive, nil
}

// Person, tek bir kişinin detayını getirir; hata durumunda demo kümesinde
// arar ve bulursa SourceDemo ile döndürür.
func (h *httpClient) Person(ctx context.Context, id string) (member.Member, Source, error) {
	var item member.BackendItem
	if err := h.get(ctx, personPath(id), nil, &item); err != nil {
		for _, m := range DemoMembers() {
			if m.ID == id {
				h.log.Warn("kişi sunucudan alınamadı, demo kaydı gösteriliyor", "person_id", id, "error", err)
				return m, SourceDemo, nil
			}
		}
		return member.Member{}, SourceLive, err
	}

	m, conclusive := member.MapBackendItem(item, id)
	if !conclusive {
		h.log.Warn("kategori işareti tanınmadı, sempatizan varsayıldı", "member_id", m.ID)
	}
	return m, SourceLive, nil
}

func personPath(id string) string {
	return "/api/Party/Person/" + url.PathEscape(id)
}

// PersonUpdate, güncelleme isteğinin gövdesidir; alan adları arka ucun kendi
// şemasıyla aynıdır.
type PersonUpdate struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Path        string `json:"path,omitempty"` // dolu değer teşkilat üyeliği demektir
	BirthDate   string `json:"birthDate,omitempty"`
	Address     string `json:"address,omitempty"`
	District    string `json:"district,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// PersonUpdateFromMember, kanonik satırı güncelleme gövdesine çevirir.
func PersonUpdateFromMember(m member.Member) PersonUpdate {
	path := ""
	if m.Category == member.CategoryOrganization {
		path = "teskilat"
	}
	return PersonUpdate{
		FullName:    m.FullName,
		PhoneNumber: m.Phone,
		Path:        path,
		BirthDate:   m.LastContact,
		Address:     m.Province,
		District:    m.District,
		Notes:       m.Note,
	}
}

func (p PersonUpdate) merged(id string) member.Member {
	cat, _ := member.CategoryFromPath(p.Path)
	return member.Member{
		ID:          id,
		FullName:    p.FullName,
		Phone:       p.PhoneNumber,
		Category:    cat,
		LastContact: p.BirthDate,
		Province:    p.Address,
		District:    p.District,
		Note:        p.Notes,
	}
}

// updateStrategy, arka ucun güncelleme sözleşmesinin bir adayını tanımlar.
// Gerçek rota kurulumlar arasında hiçbir zaman netleşmediğinden adaylar
// sırayla denenir; sıra yapılandırılabilir bir liste olarak burada durur.
type updateStrategy struct {
	method   string
	path     func(id string) string
	idInBody bool
}

var defaultUpdateStrategies = []updateStrategy{
	{method: http.MethodPut, path: personPath},
	{method: http.MethodPatch, path: personPath},
	{method: http.MethodPost, path: func(id string) string { return personPath(id) + "/Update" }},
	{method: http.MethodPost, path: func(string) string { return "/api/Party/Person/Update" }, idInBody: true},
}

// UpdatePerson, kişi kaydını günceller. Adaylar sırayla denenir ve ilk 2xx
// yanıtında durulur. Başarılı yanıtın gövdesi boşsa gönderilen veri kimlikle
// birleştirilip iyimser sonuç olarak döner. Ağ hatası zinciri keser
// (sunucu zaten ulaşılamazken kalan rotaları denemek anlamsız); tüm
// adayların reddi son durumu ve mesajı taşıyan KindUpdateRouteExhausted
// hatasıyla raporlanır.
func (h *httpClient) UpdatePerson(ctx context.Context, id string, payload PersonUpdate) (member.Member, error) {
	var lastErr *APIError

	for _, st := range defaultUpdateStrategies {
		var body any = payload
		if st.idInBody {
			body = struct {
				ID string `json:"id"`
				PersonUpdate
			}{ID: id, PersonUpdate: payload}
		}

		path := st.path(id)
		status, data, err := h.doRequest(ctx, st.method, path, nil, body)
		if err != nil {
			return member.Member{}, err
		}

		if status >= 200 && status < 300 {
			h.log.Info("kişi güncellendi", "person_id", id, "method", st.method, "path", path)
			return h.updatedMember(id, payload, data), nil
		}

		lastErr = classifyStatus(status, data)
		if lastErr.Kind == KindUnauthorized {
			h.session.Clear()
		}
		h.log.Warn("güncelleme denemesi reddedildi", "method", st.method, "path", path, "status", status)
	}

	msg := kindMessages[KindUpdateRouteExhausted]
	lastStatus := 0
	if lastErr != nil {
		lastStatus = lastErr.Status
		msg = fmt.Sprintf("%s (son yanıt %d: %s)", msg, lastErr.Status, lastErr.Message)
	}
	return member.Member{}, &APIError{
		Kind:    KindUpdateRouteExhausted,
		Status:  lastStatus,
		Message: msg,
		err:     lastErr,
	}
}

func (h *httpClient) updatedMember(id string, payload PersonUpdate, body []byte) member.Member {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return payload.merged(id)
	}

	var item member.BackendItem
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return payload.merged(id)
	}
	m, _ := member.MapBackendItem(item, id)
	return m
}
