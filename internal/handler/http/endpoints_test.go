package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/connector-sync/internal/service"
	"github.com/MKhiriev/connector-sync/models"
)

func TestCreateEndpoint(t *testing.T) {
	ts, router := newTestRouter(t)

	ts.endpoints.EXPECT().
		Create(gomock.Any(), models.Endpoint{ManagementURL: "http://edc/management", APIKey: "secret"}).
		Return(models.Endpoint{ID: 1, ManagementURL: "http://edc/management", ProtocolVersion: "v3"}, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/endpoints",
		`{"id":99,"managementUrl":"http://edc/management","apiKey":"secret"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"managementUrl":"http://edc/management","protocolVersion":"v3"}`, rr.Body.String())
}

func TestCreateEndpoint_Errors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, router := newTestRouter(t)

		rr := doRequest(t, router, http.MethodPost, "/api/endpoints", `{"managementUrl":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		_, router := newTestRouter(t)

		rr := doRequest(t, router, http.MethodPost, "/api/endpoints", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		ts, router := newTestRouter(t)
		ts.endpoints.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Endpoint{}, service.ErrInvalidDataProvided)

		rr := doRequest(t, router, http.MethodPost, "/api/endpoints", `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Error, "invalid data")
	})
}

func TestListEndpoints(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.endpoints.EXPECT().List(gomock.Any()).Return([]models.Endpoint{{ID: 1}, {ID: 2}}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/endpoints", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"managementUrl":""},{"id":2,"managementUrl":""}]`, rr.Body.String())
}

func TestGetEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(ts *testServices)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/endpoints/3",
			setup: func(ts *testServices) {
				ts.endpoints.EXPECT().Get(gomock.Any(), int64(3)).Return(models.Endpoint{ID: 3}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/endpoints/4",
			setup: func(ts *testServices) {
				ts.endpoints.EXPECT().Get(gomock.Any(), int64(4)).Return(models.Endpoint{}, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non numeric id",
			path:       "/api/endpoints/abc",
			setup:      func(*testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero id",
			path:       "/api/endpoints/0",
			setup:      func(*testServices) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, router := newTestRouter(t)
			tt.setup(ts)

			rr := doRequest(t, router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeleteEndpoint(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.endpoints.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

	rr := doRequest(t, router, http.MethodDelete, "/api/endpoints/3", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDriftReport(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.drift.EXPECT().Report(gomock.Any(), int64(3)).Return(models.DriftReport{
		EndpointID: 3,
		Kinds:      []models.KindDrift{{Kind: "assets", Total: 2, OutOfSync: 1, OutOfSyncIDs: []int64{7}}},
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/endpoints/3/drift", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"endpointId":3,"kinds":[{"kind":"assets","total":2,"outOfSync":1,"outOfSyncIds":[7]}]}`, rr.Body.String())
}

func TestDriftReport_RemoteFailure(t *testing.T) {
	ts, router := newTestRouter(t)
	ts.drift.EXPECT().Report(gomock.Any(), int64(3)).Return(models.DriftReport{}, service.ErrFetchingFailed)

	rr := doRequest(t, router, http.MethodGet, "/api/endpoints/3/drift", "")

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
