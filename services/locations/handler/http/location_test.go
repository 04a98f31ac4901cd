package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
	"github.com/piresc/locations/services/locations/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*LocationHandler, *mocks.MockLocationUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockLocationUC(ctrl)
	cfg := &models.Config{Import: models.ImportConfig{MaxUploadSize: 1 << 20}}
	return NewLocationHandler(mockUC, cfg), mockUC
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewLocationHandler(t *testing.T) {
	h, mockUC := newTestHandler(t)

	assert.NotNil(t, h)
	assert.Equal(t, mockUC, h.locationUC)
}

func TestLocationHandler_SearchLocations(t *testing.T) {
	distance := 1.5

	tests := []struct {
		name           string
		target         string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name:   "Success with every parameter",
			target: "/locations?geo_query=41.8,-87.6&search=cafe&city=Chicago&state=il&state=WI&postcode=60601&postal_code=60602&category=3&sort=name&direction=-&limit=5",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					SearchLocations(gomock.Any(), models.SearchQuery{
						GeoQuery:    "41.8,-87.6",
						Search:      "cafe",
						City:        "Chicago",
						States:      []string{"il", "WI"},
						PostalCodes: []string{"60602", "60601"},
						Categories:  []int64{3},
						Sort:        "name",
						Direction:   "-",
						Limit:       5,
					}).
					Return([]*models.LocationResult{{ID: 1, Name: "Cafe", Distance: &distance}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Invalid limit means unlimited",
			target: "/locations?limit=abc",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					SearchLocations(gomock.Any(), models.SearchQuery{}).
					Return([]*models.LocationResult{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non numeric category",
			target:         "/locations?category=food",
			mockSetup:      func(mockUC *mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Invalid geo query",
			target: "/locations?geo_query=1,2,3",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					SearchLocations(gomock.Any(), gomock.Any()).
					Return(nil, locations.InvalidQueryf("geo_query %q must be \"lat,lng\"", "1,2,3"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Store failure",
			target: "/locations",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					SearchLocations(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockUC := newTestHandler(t)
			tt.mockSetup(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.SearchLocations(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLocationHandler_SearchLocations_Body(t *testing.T) {
	h, mockUC := newTestHandler(t)

	distance := 2.25
	street := "1 Main St"
	mockUC.EXPECT().
		SearchLocations(gomock.Any(), gomock.Any()).
		Return([]*models.LocationResult{
			{ID: 1, Name: "Near", StreetAddress: &street, Categories: []models.LocationCategory{}, Distance: &distance, LatLng: &[2]float64{41.1, -87.2}},
			{ID: 2, Name: "Unknown", Categories: []models.LocationCategory{}},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/locations?geo_query=41,-87", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SearchLocations(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, 2.25, items[0]["distance"])
	assert.Equal(t, []interface{}{41.1, -87.2}, items[0]["latlng"])
	assert.Nil(t, items[1]["distance"])
	assert.Nil(t, items[1]["latlng"])
	assert.Contains(t, items[1], "postal_code")
}

func TestLocationHandler_SearchLocations_EmptyIsArray(t *testing.T) {
	h, mockUC := newTestHandler(t)

	mockUC.EXPECT().
		SearchLocations(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/locations?geo_query=99999", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SearchLocations(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestLocationHandler_GetLocation(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name: "Success",
			id:   "4",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					GetLocation(gomock.Any(), int64(4)).
					Return(&models.Location{ID: 4, Name: "Store"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid id",
			id:             "abc",
			mockSetup:      func(mockUC *mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "9",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					GetLocation(gomock.Any(), int64(9)).
					Return(nil, locations.ErrLocationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockUC := newTestHandler(t)
			tt.mockSetup(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/locations/:id")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := h.GetLocation(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLocationHandler_StateChoicesAndCategories(t *testing.T) {
	h, mockUC := newTestHandler(t)

	mockUC.EXPECT().StateChoices(gomock.Any()).Return([]models.StateChoice{{Code: "IL", Name: "Illinois"}}, nil)
	mockUC.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("db down"))

	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, h.StateChoices(e.NewContext(httptest.NewRequest(http.MethodGet, "/locations/states", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Illinois")

	rec = httptest.NewRecorder()
	require.NoError(t, h.ListCategories(e.NewContext(httptest.NewRequest(http.MethodGet, "/categories", nil), rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to list categories", decode(t, rec).Error)
}
