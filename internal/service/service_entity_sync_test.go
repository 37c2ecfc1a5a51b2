// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/connector-sync/internal/adapter"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/metrics"
	"github.com/MKhiriev/connector-sync/internal/mock"
	"github.com/MKhiriev/connector-sync/internal/service"
	"github.com/MKhiriev/connector-sync/internal/store"
	"github.com/MKhiriev/connector-sync/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────────────────────────────────────

type assetFixture struct {
	repo    *mock.MockEntityRepository[*models.Asset]
	clients *mock.MockClientResolver
	client  *mock.MockConnectorClient
	svc     service.EntitySyncService[models.AssetDTO]
}

func newAssetFixture(t *testing.T) *assetFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &assetFixture{
		repo:    mock.NewMockEntityRepository[*models.Asset](ctrl),
		clients: mock.NewMockClientResolver(ctrl),
		client:  mock.NewMockConnectorClient(ctrl),
	}

	transactor := mock.NewMockTransactor(ctrl)
	transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	f.svc = service.NewEntitySyncService(service.AssetKind(f.repo), f.clients, transactor, metrics.New(), logger.Nop())
	return f
}

// localFoo is the local asset used throughout: id 1, remote id "a-1".
func localFoo() *models.Asset {
	return &models.Asset{
		SyncState: models.SyncState{ID: 1, EndpointID: 7, RemoteID: "a-1"},
		Name:      "Foo",
	}
}

func (f *assetFixture) expectLoad(asset *models.Asset) {
	f.repo.EXPECT().Get(gomock.Any(), asset.ID).Return(asset, nil)
	f.clients.EXPECT().Client(gomock.Any(), asset.EndpointID).Return(f.client, nil)
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ─────────────────────────────────────────────────────────────────────────────
// GetWithSyncCheck
// ─────────────────────────────────────────────────────────────────────────────

func TestGetWithSyncCheck_RemoteDiffers_FlagsDrift(t *testing.T) {
	f := newAssetFixture(t)
	f.expectLoad(localFoo())
	f.client.EXPECT().Get(gomock.Any(), adapter.Assets, "a-1").
		Return(adapter.Response{Status: http.StatusOK, Body: []byte(`{"@id":"a-1","name":"Bar"}`)}, nil)
	f.repo.EXPECT().SetOutOfSync(gomock.Any(), int64(1), true).Return(nil)

	got, err := f.svc.GetWithSyncCheck(testContext(), 1)

	require.NoError(t, err)
	assert.True(t, got.OutOfSync)
	assert.Equal(t, "Foo", got.Data.Name)
	assert.Equal(t, "a-1", got.Data.ID)
}

func TestGetWithSyncCheck_RemoteEqual_ClearsDrift(t *testing.T) {
	f := newAssetFixture(t)
	local := localFoo()
	local.OutOfSync = true
	f.expectLoad(local)
	f.client.EXPECT().Get(gomock.Any(), adapter.Assets, "a-1").
		Return(adapter.Response{Status: http.StatusOK, Body: []byte(`{"@id":"a-1","@type":"Asset","name":"Foo","properties":{}}`)}, nil)
	f.repo.EXPECT().SetOutOfSync(gomock.Any(), int64(1), false).Return(nil)

	got, err := f.svc.GetWithSyncCheck(testContext(), 1)

	require.NoError(t, err)
	assert.False(t, got.OutOfSync)
}

func TestGetWithSyncCheck_RemoteMissing_FlagsDriftWithoutError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusNoContent} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			f := newAssetFixture(t)
			f.expectLoad(localFoo())
			f.client.EXPECT().Get(gomock.Any(), adapter.Assets, "a-1").
				Return(adapter.Response{Status: status}, nil)
			f.repo.EXPECT().SetOutOfSync(gomock.Any(), int64(1), true).Return(nil)

			got, err := f.svc.GetWithSyncCheck(testContext(), 1)

			require.NoError(t, err)
			assert.True(t, got.OutOfSync)
			assert.Equal(t, "Foo", got.Data.Name)
		})
	}
}

func TestGetWithSyncCheck_Failures_LeaveFlagUntouched(t *testing.T) {
	tests := []struct {
		name      string
		resp      adapter.Response
		transport error
		wantCause error
	}{
		{"forbidden", adapter.Response{Status: http.StatusForbidden}, nil, adapter.ErrAuthFailed},
		{"unauthorized", adapter.Response{Status: http.StatusUnauthorized}, nil, adapter.ErrAuthFailed},
		{"gateway timeout", adapter.Response{Status: http.StatusGatewayTimeout}, nil, adapter.ErrConnectionFailed},
		{"transport error", adapter.Response{}, errors.New("connection reset by peer"), adapter.ErrConnectionFailed},
		{"bad request", adapter.Response{Status: http.StatusBadRequest}, nil, adapter.ErrMalformed},
		{"server error", adapter.Response{Status: http.StatusInternalServerError}, nil, adapter.ErrMalformed},
		{"object without discriminator", adapter.Response{Status: http.StatusOK, Body: []byte(`{"name":"Bar"}`)}, nil, adapter.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAssetFixture(t)
			f.expectLoad(localFoo())
			f.client.EXPECT().Get(gomock.Any(), adapter.Assets, "a-1").Return(tt.resp, tt.transport)
			// no SetOutOfSync expectation: the flag must not be written

			_, err := f.svc.GetWithSyncCheck(testContext(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrFetchingFailed)
			assert.ErrorIs(t, err, tt.wantCause)
		})
	}
}

func TestGetWithSyncCheck_LocalMissing(t *testing.T) {
	f := newAssetFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(nil, store.ErrEntityNotFound)

	_, err := f.svc.GetWithSyncCheck(testContext(), 5)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetWithSyncCheck_StoreErrorPropagates(t *testing.T) {
	f := newAssetFixture(t)
	f.expectLoad(localFoo())
	f.client.EXPECT().Get(gomock.Any(), adapter.Assets, "a-1").
		Return(adapter.Response{Status: http.StatusNotFound}, nil)
	f.repo.EXPECT().SetOutOfSync(gomock.Any(), int64(1), true).Return(store.ErrExecutingStatement)

	_, err := f.svc.GetWithSyncCheck(testContext(), 1)

	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

// ─────────────────────────────────────────────────────────────────────────────
// GetAllWithSyncCheck
// ─────────────────────────────────────────────────────────────────────────────

func TestGetAllWithSyncCheck_OneListCallForAllEntities(t *testing.T) {
	f := newAssetFixture(t)
	local := []*models.Asset{
		{SyncState: models.SyncState{ID: 1, EndpointID: 7, RemoteID: "a-1"}, Name: "Same"},
		{SyncState: models.SyncState{ID: 2, EndpointID: 7, RemoteID: "a-2"}, Name: "Local"},
		{SyncState: models.SyncState{ID: 3, EndpointID: 7, RemoteID: "a-3"}, Name: "Gone"},
	}
	body := `[
		{"@id":"a-1","name":"Same"},
		{"@id":"a-2","name":"Remote"},
		{"name":"broken element"},
		{"@id":"a-9","name":"Unknown locally"}
	]`

	f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
	f.repo.EXPECT().ListByEndpoint(gomock.Any(), int64(7)).Return(local, nil)
	f.client.EXPECT().List(gomock.Any(), adapter.Assets).
		Return(adapter.Response{Status: http.StatusOK, Body: []byte(body)}, nil).
		Times(1)
	f.repo.EXPECT().SetOutOfSync(gomock.Any(), int64(1), false).Return(nil)
	f.repo.EXPECT().SetOutOfSync(gomock.Any(), int64(2), true).Return(nil)
	f.repo.EXPECT().SetOutOfSync(gomock.Any(), int64(3), true).Return(nil)

	got, err := f.svc.GetAllWithSyncCheck(testContext(), 7)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.False(t, got[0].OutOfSync)
	assert.True(t, got[1].OutOfSync)
	assert.Equal(t, "Local", got[1].Data.Name)
	assert.True(t, got[2].OutOfSync)
}

func TestGetAllWithSyncCheck_ManyEntitiesStillOneCall(t *testing.T) {
	f := newAssetFixture(t)

	const n = 50
	local := make([]*models.Asset, 0, n)
	for i := 1; i <= n; i++ {
		local = append(local, &models.Asset{SyncState: models.SyncState{ID: int64(i), EndpointID: 7, RemoteID: fmt.Sprintf("a-%d", i)}})
	}

	f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
	f.repo.EXPECT().ListByEndpoint(gomock.Any(), int64(7)).Return(local, nil)
	f.client.EXPECT().List(gomock.Any(), adapter.Assets).Return(adapter.Response{Status: http.StatusOK, Body: []byte(`[]`)}, nil).Times(1)
	f.repo.EXPECT().SetOutOfSync(gomock.Any(), gomock.Any(), true).Return(nil).Times(n)

	got, err := f.svc.GetAllWithSyncCheck(testContext(), 7)

	require.NoError(t, err)
	assert.Len(t, got, n)
}

func TestGetAllWithSyncCheck_NoLocalEntities(t *testing.T) {
	f := newAssetFixture(t)
	f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
	f.repo.EXPECT().ListByEndpoint(gomock.Any(), int64(7)).Return(nil, nil)
	f.client.EXPECT().List(gomock.Any(), adapter.Assets).Return(adapter.Response{Status: http.StatusNoContent}, nil).Times(1)

	got, err := f.svc.GetAllWithSyncCheck(testContext(), 7)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetAllWithSyncCheck_ListFailureFailsBatch(t *testing.T) {
	f := newAssetFixture(t)
	f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
	f.repo.EXPECT().ListByEndpoint(gomock.Any(), int64(7)).Return([]*models.Asset{localFoo()}, nil)
	f.client.EXPECT().List(gomock.Any(), adapter.Assets).Return(adapter.Response{Status: http.StatusNotFound}, nil)

	_, err := f.svc.GetAllWithSyncCheck(testContext(), 7)

	assert.ErrorIs(t, err, service.ErrFetchingFailed)
	assert.ErrorIs(t, err, adapter.ErrRemoteNotFound)
}

func TestGetAllWithSyncCheck_UnknownEndpoint(t *testing.T) {
	f := newAssetFixture(t)
	f.clients.EXPECT().Client(gomock.Any(), int64(8)).Return(nil, fmt.Errorf("%w: endpoint 8", service.ErrNotFound))

	_, err := f.svc.GetAllWithSyncCheck(testContext(), 8)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────────────────────────────────────

func TestCreate_EchoMatches_PersistsIntended(t *testing.T) {
	f := newAssetFixture(t)
	intended := models.AssetDTO{ID: "a-1", Name: "Foo", Properties: map[string]any{"k": "v"}}

	f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
	f.client.EXPECT().Create(gomock.Any(), adapter.Assets, intended).
		Return(adapter.Response{Status: http.StatusOK, Body: []byte(`{"@id":"a-1","@type":"Asset","name":"Foo","properties":{"k":"v"}}`)}, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Asset) error {
			assert.Equal(t, int64(7), a.EndpointID)
			assert.Equal(t, "a-1", a.RemoteID)
			assert.False(t, a.OutOfSync)
			a.ID = 10
			return nil
		})

	got, err := f.svc.Create(testContext(), 7, intended)

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, int64(7), got.EndpointID)
	assert.Equal(t, intended, got.Data)
}

func TestCreate_EchoDiffers_RemoteWins(t *testing.T) {
	f := newAssetFixture(t)
	intended := models.AssetDTO{ID: "a-1", Name: "Foo"}

	f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
	f.client.EXPECT().Create(gomock.Any(), adapter.Assets, intended).
		Return(adapter.Response{Status: http.StatusCreated, Body: []byte(`{"@id":"a-1","name":"Foo (normalized)","contentType":"text/plain"}`)}, nil)

	var persisted *models.Asset
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Asset) error {
			persisted = a
			a.ID = 11
			return nil
		})

	got, err := f.svc.Create(testContext(), 7, intended)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Foo (normalized)", persisted.Name)
	assert.Equal(t, "text/plain", persisted.ContentType)
	assert.Equal(t, int64(7), persisted.EndpointID)
	assert.Equal(t, models.AssetDTO{ID: "a-1", Name: "Foo (normalized)", ContentType: "text/plain"}, got.Data)
}

func TestCreate_RemoteWinsKeepsIntendedIdentifierWhenEchoHasNone(t *testing.T) {
	f := newAssetFixture(t)
	intended := models.AssetDTO{ID: "a-1", Name: "Foo"}

	f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
	f.client.EXPECT().Create(gomock.Any(), adapter.Assets, intended).
		Return(adapter.Response{Status: http.StatusOK, Body: []byte(`{"@type":"Asset","name":"Bar"}`)}, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Asset) error {
			assert.Equal(t, "a-1", a.RemoteID)
			assert.Equal(t, "Bar", a.Name)
			return nil
		})

	_, err := f.svc.Create(testContext(), 7, intended)
	require.NoError(t, err)
}

func TestCreate_RemoteAssignedIdentifier(t *testing.T) {
	const correctionMsg = "remote connector accepted different values than requested"

	tests := []struct {
		name     string
		body     string
		wantName string
		wantWarn bool
	}{
		{
			name:     "only identifier assigned",
			body:     `{"@id":"a-9","@type":"Asset","name":"Foo"}`,
			wantName: "Foo",
		},
		{
			name:     "identifier assigned and values corrected",
			body:     `{"@id":"a-9","@type":"Asset","name":"Foo (normalized)"}`,
			wantName: "Foo (normalized)",
			wantWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAssetFixture(t)
			intended := models.AssetDTO{Name: "Foo"}

			f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
			f.client.EXPECT().Create(gomock.Any(), adapter.Assets, intended).
				Return(adapter.Response{Status: http.StatusOK, Body: []byte(tt.body)}, nil)
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, a *models.Asset) error {
					assert.Equal(t, "a-9", a.RemoteID)
					assert.Equal(t, tt.wantName, a.Name)
					return nil
				})

			var buf bytes.Buffer
			ctx := zerolog.New(&buf).WithContext(context.Background())

			_, err := f.svc.Create(ctx, 7, intended)
			require.NoError(t, err)

			if tt.wantWarn {
				assert.Contains(t, buf.String(), correctionMsg)
				assert.Contains(t, buf.String(), "normalized")
			} else {
				assert.NotContains(t, buf.String(), correctionMsg)
			}
		})
	}
}

func TestCreate_EmptySuccess(t *testing.T) {
	t.Run("intended carries identifier", func(t *testing.T) {
		f := newAssetFixture(t)
		intended := models.AssetDTO{ID: "a-1", Name: "Foo"}

		f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
		f.client.EXPECT().Create(gomock.Any(), adapter.Assets, intended).Return(adapter.Response{Status: http.StatusNoContent}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.svc.Create(testContext(), 7, intended)

		require.NoError(t, err)
		assert.Equal(t, intended, got.Data)
	})

	t.Run("no identifier anywhere", func(t *testing.T) {
		f := newAssetFixture(t)
		intended := models.AssetDTO{Name: "Foo"}

		f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
		f.client.EXPECT().Create(gomock.Any(), adapter.Assets, intended).Return(adapter.Response{Status: http.StatusNoContent}, nil)

		_, err := f.svc.Create(testContext(), 7, intended)

		assert.ErrorIs(t, err, service.ErrCreationFailed)
	})
}

func TestCreate_NonSuccessIsFatal(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusUnauthorized, http.StatusConflict, http.StatusBadGateway} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			f := newAssetFixture(t)
			f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
			f.client.EXPECT().Create(gomock.Any(), adapter.Assets, gomock.Any()).Return(adapter.Response{Status: status}, nil)

			_, err := f.svc.Create(testContext(), 7, models.AssetDTO{ID: "a-1"})

			assert.ErrorIs(t, err, service.ErrCreationFailed)
		})
	}
}

func TestCreate_DuplicateRemoteID(t *testing.T) {
	f := newAssetFixture(t)
	f.clients.EXPECT().Client(gomock.Any(), int64(7)).Return(f.client, nil)
	f.client.EXPECT().Create(gomock.Any(), adapter.Assets, gomock.Any()).Return(adapter.Response{Status: http.StatusNoContent}, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrRemoteIDAlreadyExists)

	_, err := f.svc.Create(testContext(), 7, models.AssetDTO{ID: "a-1"})

	assert.ErrorIs(t, err, service.ErrCreationFailed)
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdate_OverwritesFromRemoteResponse(t *testing.T) {
	f := newAssetFixture(t)
	local := localFoo()
	local.OutOfSync = true
	sent := models.AssetDTO{Name: "Baz"}

	f.expectLoad(local)
	f.client.EXPECT().Update(gomock.Any(), adapter.Assets, "a-1", sent).
		Return(adapter.Response{Status: http.StatusOK, Body: []byte(`{"@id":"a-2","name":"Baz!","description":"set by remote"}`)}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Asset) error {
			assert.Equal(t, models.SyncState{ID: 1, EndpointID: 7, RemoteID: "a-2", OutOfSync: true}, a.SyncState)
			assert.Equal(t, "Baz!", a.Name)
			assert.Equal(t, "set by remote", a.Description)
			return nil
		})

	got, err := f.svc.Update(testContext(), 1, sent)

	require.NoError(t, err)
	assert.Equal(t, models.AssetDTO{ID: "a-2", Name: "Baz!", Description: "set by remote"}, got.Data)
}

func TestUpdate_EmptySuccessUsesSentValues(t *testing.T) {
	f := newAssetFixture(t)
	sent := models.AssetDTO{ID: "ignored", Name: "Baz"}

	f.expectLoad(localFoo())
	f.client.EXPECT().Update(gomock.Any(), adapter.Assets, "a-1", sent).Return(adapter.Response{Status: http.StatusNoContent}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Asset) error {
			assert.Equal(t, "a-1", a.RemoteID)
			assert.Equal(t, "Baz", a.Name)
			return nil
		})

	got, err := f.svc.Update(testContext(), 1, sent)

	require.NoError(t, err)
	assert.Equal(t, "a-1", got.Data.ID)
}

func TestUpdate_NonSuccessIsFatal(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			f := newAssetFixture(t)
			f.expectLoad(localFoo())
			f.client.EXPECT().Update(gomock.Any(), adapter.Assets, "a-1", gomock.Any()).Return(adapter.Response{Status: status}, nil)

			_, err := f.svc.Update(testContext(), 1, models.AssetDTO{Name: "Baz"})

			assert.ErrorIs(t, err, service.ErrUpdateFailed)
		})
	}
}

func TestUpdate_LocalMissing(t *testing.T) {
	f := newAssetFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), int64(4)).Return(nil, store.ErrEntityNotFound)

	_, err := f.svc.Update(testContext(), 4, models.AssetDTO{})

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────────────────────────────────────

func TestDelete_Only200RemovesLocalRecord(t *testing.T) {
	f := newAssetFixture(t)
	f.expectLoad(localFoo())
	f.client.EXPECT().Delete(gomock.Any(), adapter.Assets, "a-1").Return(adapter.Response{Status: http.StatusOK}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	require.NoError(t, f.svc.Delete(testContext(), 1))
}

func TestDelete_OtherStatusesKeepLocalRecord(t *testing.T) {
	tests := []struct {
		status    int
		wantCause error
	}{
		{http.StatusNotFound, adapter.ErrRemoteNotFound},
		{http.StatusUnauthorized, adapter.ErrAuthFailed},
		{http.StatusForbidden, adapter.ErrAuthFailed},
		{http.StatusInternalServerError, adapter.ErrMalformed},
		{http.StatusNoContent, nil},
		{http.StatusAccepted, nil},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			f := newAssetFixture(t)
			f.expectLoad(localFoo())
			f.client.EXPECT().Delete(gomock.Any(), adapter.Assets, "a-1").Return(adapter.Response{Status: tt.status}, nil)
			// no repo.Delete expectation: the local record must survive

			err := f.svc.Delete(testContext(), 1)

			require.ErrorIs(t, err, service.ErrDeletionFailed)
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}
		})
	}
}

func TestDelete_TransportError(t *testing.T) {
	f := newAssetFixture(t)
	f.expectLoad(localFoo())
	f.client.EXPECT().Delete(gomock.Any(), adapter.Assets, "a-1").Return(adapter.Response{}, errors.New("i/o timeout"))

	err := f.svc.Delete(testContext(), 1)

	assert.ErrorIs(t, err, service.ErrDeletionFailed)
	assert.ErrorIs(t, err, adapter.ErrConnectionFailed)
}

func TestDelete_LocalMissing(t *testing.T) {
	f := newAssetFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, store.ErrEntityNotFound)

	assert.ErrorIs(t, f.svc.Delete(testContext(), 3), service.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Other kinds go through the same engine
// ─────────────────────────────────────────────────────────────────────────────

func TestPolicyDefinitionKind_GetWithSyncCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEntityRepository[*models.PolicyDefinition](ctrl)
	clients := mock.NewMockClientResolver(ctrl)
	client := mock.NewMockConnectorClient(ctrl)
	transactor := mock.NewMockTransactor(ctrl)
	transactor.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })

	svc := service.NewEntitySyncService(service.PolicyDefinitionKind(repo), clients, transactor, nil, logger.Nop())

	local := &models.PolicyDefinition{
		SyncState: models.SyncState{ID: 2, EndpointID: 7, RemoteID: "pd-1"},
		Policy:    map[string]any{"@type": "Set", "permission": []any{}},
	}
	repo.EXPECT().Get(gomock.Any(), int64(2)).Return(local, nil)
	clients.EXPECT().Client(gomock.Any(), int64(7)).Return(client, nil)
	client.EXPECT().Get(gomock.Any(), adapter.PolicyDefinitions, "pd-1").
		Return(adapter.Response{Status: http.StatusOK, Body: []byte(`{"@id":"pd-1","@type":"PolicyDefinition","policy":{"@type":"Set","permission":[]}}`)}, nil)
	repo.EXPECT().SetOutOfSync(gomock.Any(), int64(2), false).Return(nil)

	got, err := svc.GetWithSyncCheck(testContext(), 2)

	require.NoError(t, err)
	assert.False(t, got.OutOfSync)
}
