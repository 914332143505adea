package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/mock"
	"github.com/MKhiriev/go-qr-forge/models"
)

func newTestClientSync(t *testing.T) (ClientSyncService, *mock.MockHistoryService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	history := mock.NewMockHistoryService(ctrl)
	adapter := mock.NewMockServerAdapter(ctrl)
	return NewClientSyncService(history, adapter, "laptop", logger.Nop()), history, adapter
}

func TestClientSyncService_Push(t *testing.T) {
	svc, history, adapter := newTestClientSync(t)
	ctx := context.Background()
	entries := []models.HistoryEntry{{ID: "b"}, {ID: "a"}}

	history.EXPECT().List(ctx, "laptop").Return(entries, nil)
	adapter.EXPECT().PushHistory(ctx, entries).Return(nil)

	require.NoError(t, svc.Push(ctx))
}

func TestClientSyncService_Push_SkipsUnchangedHistory(t *testing.T) {
	svc, history, adapter := newTestClientSync(t)
	ctx := context.Background()
	entries := []models.HistoryEntry{{ID: "a"}}

	history.EXPECT().List(ctx, "laptop").Return(entries, nil).Times(2)
	adapter.EXPECT().PushHistory(ctx, entries).Return(nil).Times(1)

	require.NoError(t, svc.Push(ctx))
	require.NoError(t, svc.Push(ctx))
}

func TestClientSyncService_Push_EmptyHistoryIsPushedOnce(t *testing.T) {
	svc, history, adapter := newTestClientSync(t)
	ctx := context.Background()

	history.EXPECT().List(ctx, "laptop").Return([]models.HistoryEntry{}, nil).Times(2)
	adapter.EXPECT().PushHistory(ctx, gomock.Len(0)).Return(nil).Times(1)

	require.NoError(t, svc.Push(ctx))
	require.NoError(t, svc.Push(ctx))
}

func TestClientSyncService_Push_RetriesAfterFailure(t *testing.T) {
	svc, history, adapter := newTestClientSync(t)
	ctx := context.Background()
	entries := []models.HistoryEntry{{ID: "a"}}

	history.EXPECT().List(ctx, "laptop").Return(entries, nil).Times(2)
	gomock.InOrder(
		adapter.EXPECT().PushHistory(ctx, entries).Return(assert.AnError),
		adapter.EXPECT().PushHistory(ctx, entries).Return(nil),
	)

	err := svc.Push(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	require.NoError(t, svc.Push(ctx))
}

func TestClientSyncService_Push_ListError(t *testing.T) {
	svc, history, _ := newTestClientSync(t)
	ctx := context.Background()

	history.EXPECT().List(ctx, "laptop").Return(nil, assert.AnError)

	assert.ErrorIs(t, svc.Push(ctx), assert.AnError)
}

func TestClientSyncService_ServerVersion(t *testing.T) {
	svc, _, adapter := newTestClientSync(t)
	ctx := context.Background()

	adapter.EXPECT().Version(ctx).Return("1.4.0", nil)

	v, err := svc.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestClientSyncService_ServerVersion_Unreachable(t *testing.T) {
	svc, _, adapter := newTestClientSync(t)
	ctx := context.Background()

	adapter.EXPECT().Version(ctx).Return("", assert.AnError)

	_, err := svc.ServerVersion(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}
