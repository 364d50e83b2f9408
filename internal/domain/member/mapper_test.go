package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBackendItem(t *testing.T) {
	tests := []struct {
		name       string
		item       BackendItem
		fallbackID string
		expected   Member
		conclusive bool
	}{
		{
			name: "fullName varsa ad soyad yok sayılır",
			item: BackendItem{
				ID:          "42",
				FullName:    "Ali Yılmaz",
				FirstName:   "Başkası",
				PhoneNumber: "05321112233",
				Path:        "il/ankara/cankaya",
				BirthDate:   "2024-05-01T00:00:00",
			},
			expected: Member{
				ID:          "42",
				FullName:    "Ali Yılmaz",
				Phone:       "05321112233",
				Category:    CategoryOrganization,
				LastContact: "2024-05-01",
			},
			conclusive: true,
		},
		{
			name: "ad soyad birleştirilir ve kırpılır",
			item: BackendItem{
				ID:        float64(7),
				FirstName: "  Hüseyin ",
				LastName:  " Çelik  ",
			},
			expected: Member{
				ID:       "7",
				FullName: "Hüseyin Çelik",
				Category: CategorySympathizer,
			},
			conclusive: true,
		},
		{
			name:       "kimliksiz kayıt konum kimliği alır",
			item:       BackendItem{FullName: "Fatma Işık"},
			fallbackID: "p2-idx14",
			expected: Member{
				ID:       "p2-idx14",
				FullName: "Fatma Işık",
				Category: CategorySympathizer,
			},
			conclusive: true,
		},
		{
			name: "boş path sempatizan demektir",
			item: BackendItem{ID: "1", FullName: "X", Path: "   "},
			expected: Member{
				ID:       "1",
				FullName: "X",
				Category: CategorySympathizer,
			},
			conclusive: true,
		},
		{
			name: "beklenmedik path tipi varsayılana düşer",
			item: BackendItem{ID: "1", FullName: "X", Path: []any{"garip"}},
			expected: Member{
				ID:       "1",
				FullName: "X",
				Category: CategorySympathizer,
			},
			conclusive: false,
		},
		{
			name: "T içermeyen tarih olduğu gibi kalır",
			item: BackendItem{ID: "1", FullName: "X", BirthDate: "2023-11-20"},
			expected: Member{
				ID:          "1",
				FullName:    "X",
				Category:    CategorySympathizer,
				LastContact: "2023-11-20",
			},
			conclusive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conclusive := MapBackendItem(tt.item, tt.fallbackID)

			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.conclusive, conclusive)
		})
	}
}

func TestCategoryFromPath(t *testing.T) {
	tests := []struct {
		name       string
		path       any
		expected   Category
		conclusive bool
	}{
		{name: "nil", path: nil, expected: CategorySympathizer, conclusive: true},
		{name: "dolu metin", path: "il/izmir", expected: CategoryOrganization, conclusive: true},
		{name: "boş metin", path: "", expected: CategorySympathizer, conclusive: true},
		{name: "true", path: true, expected: CategoryOrganization, conclusive: true},
		{name: "false", path: false, expected: CategorySympathizer, conclusive: true},
		{name: "sıfır olmayan sayı", path: float64(3), expected: CategoryOrganization, conclusive: true},
		{name: "sıfır", path: float64(0), expected: CategorySympathizer, conclusive: true},
		{name: "bilinmeyen tip", path: map[string]any{}, expected: CategorySympathizer, conclusive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conclusive := CategoryFromPath(tt.path)

			require.Equal(t, tt.expected, got)
			assert.Equal(t, tt.conclusive, conclusive)
		})
	}
}
