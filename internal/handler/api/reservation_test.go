//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"roomsync/internal/handler/api"
	resdto "roomsync/internal/handler/dto/response"
	"roomsync/internal/usecase"
	"roomsync/internal/usecase/readmodel"
	"roomsync/tests/common/builder"
	"roomsync/tests/common/httptest"
	"roomsync/tests/common/testutil"
	usecasemock "roomsync/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockReservationUseCase
	handler     *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockUseCase)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.ListReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.GET("/reservations/:id/overlapping", s.handler.GetOverlapping)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnRM := builder.NewReservationBuilder().BuildRM()

	s.Run("success: returns 201 Created with reservation body", func() {
		s.mockUseCase.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnRM.ID, response.ID)
		s.Equal(returnRM.ReservableSlug, response.ReservableSlug)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: reservable_slug (required)", mutate: testutil.Field("reservable_slug", nil)},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil)},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil)},
			{name: "malformed start timestamp", mutate: testutil.Field("start", "yesterday")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown reservable",
				useCaseError:   usecase.ErrReservableNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservable not found",
			},
			{
				name:           "unknown owner",
				useCaseError:   usecase.ErrOwnerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Owner not found",
			},
			{
				name:           "invalid time slot",
				useCaseError:   usecase.ErrInvalidTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "time slot conflict",
				useCaseError:   usecase.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Time slot conflict",
			},
			{
				name:           "internal server error",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnRM := builder.NewReservationBuilder().WithExternalID("wtt3-1").BuildRM()
	url := "/reservations/" + returnRM.ID.String()

	s.Run("success: returns 200 OK with reservation", func() {
		s.mockUseCase.EXPECT().GetReservation(gomock.Any(), returnRM.ID).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnRM.ID, response.ID)
		s.Require().NotNil(response.ExternalID)
		s.Equal("wtt3-1", *response.ExternalID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockUseCase.EXPECT().GetReservation(gomock.Any(), returnRM.ID).
			Return(nil, usecase.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.Run("success: returns full list without filters", func() {
		returned := []*readmodel.ReservationListRM{
			builder.NewReservationBuilder().BuildListRM(),
			builder.NewReservationBuilder().WithSlug("lab-2").BuildListRM(),
		}

		s.mockUseCase.EXPECT().ListReservations(gomock.Any(), usecase.ReservationFilter{}).
			Return(returned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes filters through", func() {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		expectedFilter := usecase.ReservationFilter{ReservableSlug: "room-101", From: &from, To: &to}

		s.mockUseCase.EXPECT().ListReservations(gomock.Any(), expectedFilter).
			Return([]*readmodel.ReservationListRM{}, nil).Times(1)

		url := "/reservations?reservable=room-101&from=2026-03-01T00:00:00Z&to=2026-03-31T00:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockUseCase.EXPECT().ListReservations(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestGetOverlapping
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetOverlapping() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/overlapping"

	s.Run("success: returns overlapping reservations", func() {
		returned := []*readmodel.ReservationListRM{builder.NewReservationBuilder().BuildListRM()}

		s.mockUseCase.EXPECT().GetOverlapping(gomock.Any(), reservationID).
			Return(returned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: empty list when nothing overlaps", func() {
		s.mockUseCase.EXPECT().GetOverlapping(gomock.Any(), reservationID).
			Return([]*readmodel.ReservationListRM{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockUseCase.EXPECT().GetOverlapping(gomock.Any(), reservationID).
			Return(nil, usecase.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
