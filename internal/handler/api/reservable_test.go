//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"roomsync/internal/handler/api"
	"roomsync/internal/handler/dto/response"
	"roomsync/internal/usecase"
	"roomsync/internal/usecase/readmodel"
	"roomsync/tests/common/httptest"
	usecasemock "roomsync/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservableHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	router            *gin.Engine
	reservableUseCase *usecasemock.MockReservableUseCase
}

func TestReservableHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservableHandlerTestSuite))
}

func (s *ReservableHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservableUseCase = usecasemock.NewMockReservableUseCase(s.ctrl)

	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	handler := api.NewReservableHandler(s.reservableUseCase)
	s.router.GET("/api/reservables", handler.ListReservables)
	s.router.GET("/api/reservables/:slug", handler.GetReservable)
}

func (s *ReservableHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReservableHandlerTestSuite) TestListReservables() {
	s.Run("returns every reservable", func() {
		rms := []*readmodel.ReservableRM{
			{ID: uuid.New(), Slug: "room-101", Name: "Room 101", Kind: "room"},
			{ID: uuid.New(), Slug: "lab-2", Name: "Computer Lab 2", Kind: "lab"},
		}
		s.reservableUseCase.EXPECT().
			ListReservables(gomock.Any()).
			Return(rms, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservables", nil, "")

		var got []response.ReservableResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got, 2)
		s.Equal("room-101", got[0].Slug)
	})

	s.Run("returns empty array when nothing is registered", func() {
		s.reservableUseCase.EXPECT().
			ListReservables(gomock.Any()).
			Return([]*readmodel.ReservableRM{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservables", nil, "")

		var got []response.ReservableResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Empty(got)
	})

	s.Run("maps usecase failure to 500", func() {
		s.reservableUseCase.EXPECT().
			ListReservables(gomock.Any()).
			Return(nil, usecase.ErrReservableNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservables", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal error")
	})
}

func (s *ReservableHandlerTestSuite) TestGetReservable() {
	s.Run("returns the reservable for a known slug", func() {
		rm := &readmodel.ReservableRM{ID: uuid.New(), Slug: "room-101", Name: "Room 101", Kind: "room"}
		s.reservableUseCase.EXPECT().
			GetReservable(gomock.Any(), "room-101").
			Return(rm, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservables/room-101", nil, "")

		var got response.ReservableResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(rm.ID, got.ID)
		s.Equal("Room 101", got.Name)
	})

	s.Run("answers 404 for an unknown slug", func() {
		s.reservableUseCase.EXPECT().
			GetReservable(gomock.Any(), "no-such-room").
			Return(nil, usecase.ErrReservableNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservables/no-such-room", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}
