package authapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/internal/app/server/store"
)

func newTestHandler() (*Handler, *store.Store) {
	st := store.New(slog.Default())
	return NewHandler(st, slog.Default(), nil, nil), st
}

func TestHandler_Login(t *testing.T) {
	h, st := newTestHandler()

	t.Run("geçerli kimlik", func(t *testing.T) {
		input := &loginInput{}
		input.Body.Email = "admin@btp.org.tr"
		input.Body.Password = "btp-demo"

		resp, err := h.login(context.Background(), input)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Body.AccessToken)
		assert.NotEmpty(t, resp.Body.RefreshToken)
		assert.Equal(t, "Saha Yöneticisi", resp.Body.User.FullName)

		_, ok := st.ValidateAccess(resp.Body.AccessToken)
		assert.True(t, ok)
	})

	t.Run("kullanıcı adıyla giriş", func(t *testing.T) {
		input := &loginInput{}
		input.Body.Username = "admin"
		input.Body.Password = "btp-demo"

		resp, err := h.login(context.Background(), input)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Body.AccessToken)
	})

	t.Run("hatalı parola iş kuralı hatası üretir", func(t *testing.T) {
		input := &loginInput{}
		input.Body.Email = "admin@btp.org.tr"
		input.Body.Password = "yanlis"

		_, err := h.login(context.Background(), input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BusinessException")
	})
}

func TestHandler_Refresh(t *testing.T) {
	h, st := newTestHandler()

	_, refresh := st.IssueTokens("admin@btp.org.tr")

	resp, err := h.refresh(context.Background(), &refreshInput{RefreshToken: refresh})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Body.AccessToken)
	assert.NotEqual(t, refresh, resp.Body.RefreshToken)

	// Harcanan jeton ikinci kez kullanılamaz
	_, err = h.refresh(context.Background(), &refreshInput{RefreshToken: refresh})
	assert.Error(t, err)
}

func TestHandler_Logout(t *testing.T) {
	h, st := newTestHandler()

	access, _ := st.IssueTokens("admin@btp.org.tr")

	resp, err := h.logout(context.Background(), &logoutInput{Authorization: "Bearer " + access})
	require.NoError(t, err)
	assert.Equal(t, "Ok", resp.Body.Status)

	_, ok := st.ValidateAccess(access)
	assert.False(t, ok, "çıkışla erişim jetonu düşer")
}

func TestHandler_Revoke(t *testing.T) {
	h, st := newTestHandler()

	_, refresh := st.IssueTokens("admin@btp.org.tr")

	input := &revokeInput{}
	input.Body.Token = refresh

	_, err := h.revoke(context.Background(), input)
	require.NoError(t, err)

	_, _, ok := st.Refresh(refresh)
	assert.False(t, ok)
}
