package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "github.com/cbodonnell/reign/mocks/github.com/cbodonnell/reign/pkg/repositories"
	gametypes "github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRouter_ListReigns(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		setup      func(repo *mocks.MockRepository)
		wantStatus int
		wantIDs    []string
	}{
		{
			name: "default limit",
			url:  "/reigns",
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().ListReigns(mock.Anything, 0).Return([]*gametypes.Reign{{ID: "a"}, {ID: "b"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"a", "b"},
		},
		{
			name: "explicit limit",
			url:  "/reigns?limit=1",
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().ListReigns(mock.Anything, 1).Return([]*gametypes.Reign{{ID: "a"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"a"},
		},
		{
			name:       "bad limit",
			url:        "/reigns?limit=zero",
			setup:      func(repo *mocks.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "repository error",
			url:  "/reigns",
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().ListReigns(mock.Anything, 0).Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRepository(t)
			tt.setup(repo)

			rec := httptest.NewRecorder()
			NewRouter(repo, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantIDs == nil {
				return
			}
			var reigns []gametypes.Reign
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&reigns))
			ids := make([]string, len(reigns))
			for i, r := range reigns {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRouter_GetReign(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().GetReign(mock.Anything, "known").Return(&gametypes.Reign{
		ID:      "known",
		Meters:  gametypes.Meters{Heart: 0, Gold: 30, Military: 60, Faith: 45},
		Endings: []gametypes.Ending{{Kind: gametypes.ResourceHeart, Bound: gametypes.BoundFloor}},
	}, nil).Once()
	repo.EXPECT().GetReign(mock.Anything, "missing").Return(nil, &repositories.ErrNotFound{}).Once()

	router := NewRouter(repo, "example.com")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reigns/known", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	var reign gametypes.Reign
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reign))
	assert.Equal(t, "known", reign.ID)
	assert.Equal(t, 30, reign.Meters.Gold)
	assert.True(t, reign.Ended())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reigns/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reigns/known", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
