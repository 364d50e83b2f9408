package searchlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, rec *Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestServiceAdd(t *testing.T) {
	t.Run("kimlik ve tarih atanır", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return fixed }

		repo.On("Append", mock.Anything, mock.MatchedBy(func(rec *Record) bool {
			return rec.ID != "" && rec.Date.Equal(fixed) && rec.PersonID == "42"
		})).Return(nil)

		got, err := svc.Add(context.Background(), Record{PersonID: "42", PersonName: "Ali Yılmaz"})

		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, fixed, got.Date)
		repo.AssertExpectations(t)
	})

	t.Run("verilen tarih korunur", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		given := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

		repo.On("Append", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.Add(context.Background(), Record{PersonID: "42", Date: given})

		require.NoError(t, err)
		assert.Equal(t, given, got.Date)
	})

	t.Run("personId olmadan reddedilir", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		_, err := svc.Add(context.Background(), Record{PersonName: "İsimsiz"})

		assert.ErrorIs(t, err, ErrInvalidRecord)
		repo.AssertNotCalled(t, "Append")
	})

	t.Run("depo hatası sarılarak döner", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		repoErr := errors.New("disk dolu")

		repo.On("Append", mock.Anything, mock.Anything).Return(repoErr)

		_, err := svc.Add(context.Background(), Record{PersonID: "42"})

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestServiceList(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	records := []Record{
		{ID: "b", PersonID: "2", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "a", PersonID: "1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	repo.On("List", mock.Anything).Return(records, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestServiceDelete(t *testing.T) {
	t.Run("başarılı silme", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Delete", mock.Anything, "abc").Return(nil)

		require.NoError(t, svc.Delete(context.Background(), "abc"))
		repo.AssertExpectations(t)
	})

	t.Run("olmayan kayıt", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Delete", mock.Anything, "yok").Return(ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), "yok"), ErrNotFound)
	})

	t.Run("boş kimlik reddedilir", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrInvalidRecord)
		repo.AssertNotCalled(t, "Delete")
	})
}
