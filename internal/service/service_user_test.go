package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/mock"
	"github.com/MKhiriev/lookup-gateway/internal/store"
	"github.com/MKhiriev/lookup-gateway/models"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestUserLookupService_FetchUser_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserLookupService(repo, logger.Nop())
	ctx := context.Background()

	stored := models.User{
		UserID:       10000,
		EmailAddress: strPtr("marc@example.com"),
		CreatedAt:    i64Ptr(0),
		Deleted:      i64Ptr(1),
		Settings:     strPtr(""),
	}
	repo.EXPECT().FindUserByID(ctx, int64(10000)).Return(stored, true, nil).Times(1)

	user, found, err := svc.FetchUser(ctx, 10000)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored, user)
}

func TestUserLookupService_FetchUser_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserLookupService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, int64(424242)).Return(models.User{}, false, nil)

	_, found, err := svc.FetchUser(ctx, 424242)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserLookupService_FetchUser_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserLookupService(repo, logger.Nop())
	ctx := context.Background()

	storeErr := &store.StoreError{Backend: store.BackendUser, Kind: store.KindUnavailable, Err: errors.New("connection refused")}
	repo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{}, false, storeErr)

	_, found, err := svc.FetchUser(ctx, 1)
	require.Error(t, err)
	assert.False(t, found)

	var target *store.StoreError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, store.KindUnavailable, target.Kind)
}

func TestUserLookupService_FetchUser_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserLookupService(repo, logger.Nop())
	ctx := context.Background()

	stored := models.User{UserID: 5, EmailAddress: strPtr("a@b.c")}
	repo.EXPECT().FindUserByID(ctx, int64(5)).Return(stored, true, nil).Times(2)

	first, _, err := svc.FetchUser(ctx, 5)
	require.NoError(t, err)
	second, _, err := svc.FetchUser(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
