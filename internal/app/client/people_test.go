package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetHKarabulut/btp-app/internal/domain/member"
)

func TestFetchMemberPageLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Members/GetList", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("PageIndex"))
		assert.Equal(t, "25", r.URL.Query().Get("PageSize"))

		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"id": "a1", "fullName": "Ali Yılmaz", "phoneNumber": "5321112233", "path": "il/ankara", "birthDate": "2024-04-12T00:00:00"},
				{"firstName": "Hüseyin", "lastName": "Çelik"},
			},
			"count": 57,
			"pages": 3,
		})
	}))
	defer srv.Close()

	h, _ := newTestClient(t, srv.URL)

	res, err := h.FetchMemberPage(context.Background(), 2, 25)

	require.NoError(t, err)
	assert.Equal(t, SourceLive, res.Source)
	assert.Equal(t, 57, res.Count)
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, 2, res.PageIndex)
	require.Len(t, res.Members, 2)

	assert.Equal(t, member.Member{
		ID:          "a1",
		FullName:    "Ali Yılmaz",
		Phone:       "5321112233",
		Category:    member.CategoryOrganization,
		LastContact: "2024-04-12",
	}, res.Members[0])

	// Kimliksiz satır sayfa içindeki mutlak konumundan kimlik alır
	assert.Equal(t, "idx-26", res.Members[1].ID)
	assert.Equal(t, "Hüseyin Çelik", res.Members[1].FullName)
	assert.Equal(t, member.CategorySympathizer, res.Members[1].Category)
}

func TestFetchMemberPageBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "1", "fullName": "Tek Kişi"},
		})
	}))
	defer srv.Close()

	h, _ := newTestClient(t, srv.URL)

	res, err := h.FetchMemberPage(context.Background(), 1, 25)

	require.NoError(t, err)
	assert.Equal(t, SourceLive, res.Source)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 1, res.Pages)
	require.Len(t, res.Members, 1)
}

func TestFetchMemberPageFallsBackToDemo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	h, _ := newTestClient(t, srv.URL)

	res, err := h.FetchMemberPage(context.Background(), 1, 25)

	require.NoError(t, err)
	assert.Equal(t, SourceDemo, res.Source, "çevrimdışı sonuç açıkça işaretlenmeli")
	assert.Equal(t, len(DemoMembers()), res.Count)
	assert.NotEmpty(t, res.Members)
}

func TestPersonFallsBackToDemo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	h, _ := newTestClient(t, srv.URL)

	m, source, err := h.Person(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, SourceDemo, source)
	assert.Equal(t, "Ali Yılmaz", m.FullName)

	// Demo kümesinde de olmayan kişi için hata saklanmaz
	_, _, err = h.Person(context.Background(), "boyle-biri-yok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnreachable, apiErr.Kind)
}

func TestUpdatePersonThirdStrategyWins(t *testing.T) {
	var attempts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts = append(attempts, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodPut, r.Method == http.MethodPatch:
			w.WriteHeader(http.StatusMethodNotAllowed)
		case r.URL.Path == "/api/Party/Person/42/Update":
			// Üçüncü aday kabul ediyor, gövdesiz 204 dönüyor
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	h, _ := newTestClient(t, srv.URL)
	payload := PersonUpdate{FullName: "Ali Yılmaz", PhoneNumber: "5321112233", Path: "il/ankara"}

	got, err := h.UpdatePerson(context.Background(), "42", payload)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"PUT /api/Party/Person/42",
		"PATCH /api/Party/Person/42",
		"POST /api/Party/Person/42/Update",
	}, attempts, "ilk 2xx yanıtında durulmalı")

	// Boş gövde: gönderilen veri kimlikle birleşip iyimser sonuç olur
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "Ali Yılmaz", got.FullName)
	assert.Equal(t, member.CategoryOrganization, got.Category)
}

func TestUpdatePersonLastStrategyCarriesID(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/Party/Person/Update" {
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(map[string]any{
				"id": "42", "fullName": "Ali Yılmaz", "phoneNumber": "5321112233",
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	h, _ := newTestClient(t, srv.URL)

	got, err := h.UpdatePerson(context.Background(), "42", PersonUpdate{FullName: "Ali Yılmaz", PhoneNumber: "5321112233"})

	require.NoError(t, err)
	assert.Equal(t, "42", gotBody["id"], "son aday kimliği gövdede taşımalı")
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "5321112233", got.Phone)
}

func TestUpdatePersonExhausted(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"message": "BusinessException: Kayıt kilitli. ayrıntı"})
	}))
	defer srv.Close()

	h, _ := newTestClient(t, srv.URL)

	_, err := h.UpdatePerson(context.Background(), "42", PersonUpdate{FullName: "X"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUpdateRouteExhausted, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Kayıt kilitli")
	assert.Equal(t, 4, calls, "dört adayın hepsi denenmeli")
}

func TestUpdatePersonNetworkErrorAbortsChain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	h, _ := newTestClient(t, srv.URL)

	_, err := h.UpdatePerson(context.Background(), "42", PersonUpdate{FullName: "X"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnreachable, apiErr.Kind, "ağ hatasında kalan rotalar denenmez")
}
