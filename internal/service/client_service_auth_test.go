// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/mock"
	"github.com/MKhiriev/go-inventory-keeper/internal/session"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T) (ClientAuthService, *mock.MockAuthAPI, *mock.MockPersister, *session.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockAuthAPI(ctrl)
	persister := mock.NewMockPersister(ctrl)
	store := session.NewStore(persister, logger.Nop())
	return NewClientAuthService(api, store, logger.Nop()), api, persister, store
}

var testAuthResponse = models.AuthResponse{
	Success:      true,
	AccessToken:  "access",
	RefreshToken: "refresh",
	User:         &models.User{ID: "u1", Email: "ann@example.com", Role: models.RoleAdmin},
}

func TestClientAuthService_Login_Success(t *testing.T) {
	svc, api, persister, store := newTestAuthSvc(t)
	ctx := context.Background()

	api.EXPECT().
		Login(ctx, models.Credentials{Email: "ann@example.com", Password: "pw"}).
		Return(testAuthResponse, nil)
	persister.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Session) error {
		assert.Equal(t, "access", s.AccessToken)
		assert.Equal(t, "refresh", s.RefreshToken)
		return nil
	})

	user, err := svc.Login(ctx, "  ann@example.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "refresh", store.RefreshToken())
}

func TestClientAuthService_Login_EmptyInput(t *testing.T) {
	svc, _, _, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), " ", "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "ann@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	svc, api, _, store := newTestAuthSvc(t)

	apiErr := &adapter.APIError{Kind: adapter.KindStatus, Status: 401, Message: "Your session has expired."}
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, apiErr)

	_, err := svc.Login(context.Background(), "ann@example.com", "bad")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, store.IsAuthenticated())
}

func TestClientAuthService_Login_NetworkError(t *testing.T) {
	svc, api, _, _ := newTestAuthSvc(t)

	apiErr := &adapter.APIError{Kind: adapter.KindNetwork, Err: errors.New("connection refused")}
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, apiErr)

	_, err := svc.Login(context.Background(), "ann@example.com", "pw")
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientAuthService_Login_PersistFailureKeepsSession(t *testing.T) {
	svc, api, persister, store := newTestAuthSvc(t)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(testAuthResponse, nil)
	persister.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Login(context.Background(), "ann@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, store.IsAuthenticated())
}

func TestClientAuthService_Login_IncompletePair(t *testing.T) {
	svc, api, _, store := newTestAuthSvc(t)

	resp := testAuthResponse
	resp.RefreshToken = ""
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(resp, nil)

	_, err := svc.Login(context.Background(), "ann@example.com", "pw")
	assert.ErrorIs(t, err, session.ErrIncompleteTokens)
	assert.False(t, store.IsAuthenticated())
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, api, persister, store := newTestAuthSvc(t)
	ctx := context.Background()

	persister.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	require.NoError(t, store.Login(ctx, testAuthResponse.User, testAuthResponse.Pair()))

	var reasons []error
	store.OnLogout(func(reason error) { reasons = append(reasons, reason) })

	api.EXPECT().Logout(ctx).Return(errors.New("server down"))
	persister.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, []error{nil}, reasons)
}

func TestClientAuthService_LogoutWhenSignedOut(t *testing.T) {
	svc, _, persister, _ := newTestAuthSvc(t)

	persister.EXPECT().Clear(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Logout(context.Background()))
}

func TestClientAuthService_RestoreSession(t *testing.T) {
	svc, _, persister, _ := newTestAuthSvc(t)

	persister.EXPECT().Load(gomock.Any()).Return(models.Session{
		User: &models.User{ID: "u1"}, AccessToken: "a", RefreshToken: "r",
	}, nil)

	ok, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClientAuthService_RestoreSession_Failure(t *testing.T) {
	svc, _, persister, _ := newTestAuthSvc(t)

	persister.EXPECT().Load(gomock.Any()).Return(models.Session{}, errors.New("corrupted"))

	ok, err := svc.RestoreSession(context.Background())
	assert.ErrorIs(t, err, session.ErrPersistSession)
	assert.False(t, ok)
}
