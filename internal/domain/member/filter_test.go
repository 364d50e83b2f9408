package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() []Member {
	return []Member{
		{ID: "1", FullName: "Ali Yılmaz", Phone: "0532 111 22 33"},
		{ID: "2", FullName: "Hüseyin Çelik", Phone: "0543 222 33 44"},
		{ID: "3", FullName: "İsmail Demir", Phone: "0505 333 44 55"},
		{ID: "4", FullName: "Fatma Işık", Phone: "0555 444 55 66"},
		{ID: "5", FullName: "Mehmet Öztürk", Phone: "0506 555 66 77"},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name        string
		nameQuery   string
		phoneQuery  string
		expectedIDs []string
	}{
		{
			name:        "boş sorgular listeyi olduğu gibi bırakır",
			expectedIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:        "isim alt dize eşleşmesi",
			nameQuery:   "çelik",
			expectedIDs: []string{"2"},
		},
		{
			name:        "büyük İ küçük i ile eşleşir",
			nameQuery:   "İsmail",
			expectedIDs: []string{"3"},
		},
		{
			name:        "noktasız I türkçe ı'ya katlanır",
			nameQuery:   "IŞIK",
			expectedIDs: []string{"4"},
		},
		{
			name:        "telefon boşluklardan bağımsız eşleşir",
			phoneQuery:  "5432223",
			expectedIDs: []string{"2"},
		},
		{
			name:        "boşluklu telefon sorgusu da eşleşir",
			phoneQuery:  "543 222",
			expectedIDs: []string{"2"},
		},
		{
			name:        "iki sorgu birlikte daraltır",
			nameQuery:   "i",
			phoneQuery:  "0505",
			expectedIDs: []string{"3"},
		},
		{
			name:        "eşleşme yoksa boş sonuç",
			nameQuery:   "yok böyle biri",
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := sampleList()

			got := Filter(list, tt.nameQuery, tt.phoneQuery)

			ids := make([]string, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	list := sampleList()

	_ = Filter(list, "ali", "")

	require.Equal(t, sampleList(), list)
}

func TestFilterResultIsSubset(t *testing.T) {
	list := sampleList()

	got := Filter(list, "e", "05")

	byID := make(map[string]Member, len(list))
	for _, m := range list {
		byID[m.ID] = m
	}
	for _, m := range got {
		orig, ok := byID[m.ID]
		require.True(t, ok, "süzme sonucu girdide olmayan satır içeremez")
		assert.Equal(t, orig, m)
	}
}
