//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"roomsync/internal/handler/api"
	reqdto "roomsync/internal/handler/dto/request"
	resdto "roomsync/internal/handler/dto/response"
	"roomsync/internal/infra/wtt3"
	"roomsync/internal/usecase"
	"roomsync/tests/common/httptest"
	usecasemock "roomsync/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WTT3ImportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockWTT3ImportUseCase
	handler     *api.WTT3ImportHandler
}

func (s *WTT3ImportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockWTT3ImportUseCase(s.mockCtrl)
	s.handler = api.NewWTT3ImportHandler(s.mockUseCase)

	s.router.POST("/imports/wtt3", s.handler.RunImport)
}

func (s *WTT3ImportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWTT3ImportHandlerSuite(t *testing.T) {
	suite.Run(t, new(WTT3ImportHandlerTestSuite))
}

func (s *WTT3ImportHandlerTestSuite) TestRunImport() {
	url := "/imports/wtt3"

	s.Run("success: empty body runs with configured defaults", func() {
		s.mockUseCase.EXPECT().Run(gomock.Any(), usecase.ImportParams{}).
			Return(&usecase.ImportResult{Created: 3, Updated: 1, Failed: []usecase.FailureRecord{}, Pages: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ImportRunResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Created)
		s.Equal(1, response.Updated)
		s.Equal(2, response.Pages)
		s.Empty(response.Failed)
		s.False(response.Truncated)
	})

	s.Run("success: per-record failures are reported in the body, not the status", func() {
		result := &usecase.ImportResult{
			Created: 1,
			Failed: []usecase.FailureRecord{
				{ExternalID: "wtt3-ghost", Slug: "no-such-room", Kind: usecase.FailureUnknownReservable, Reason: "no reservable with slug no-such-room"},
			},
			Pages: 1,
		}
		s.mockUseCase.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ImportRunResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Failed, 1)
		s.Equal("UNKNOWN_RESERVABLE", response.Failed[0].Kind)
		s.Equal("wtt3-ghost", response.Failed[0].ExternalID)
	})

	s.Run("success: body overrides are passed through", func() {
		reqBody := reqdto.RunImportRequest{
			APIURL:           "https://wtt3.other.edu",
			APIKey:           "override-key",
			AllowOwnerCreate: true,
		}
		expectedParams := usecase.ImportParams{
			APIURL:           "https://wtt3.other.edu",
			APIKey:           "override-key",
			AllowOwnerCreate: true,
		}
		s.mockUseCase.EXPECT().Run(gomock.Any(), expectedParams).
			Return(&usecase.ImportResult{Failed: []usecase.FailureRecord{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 502 Bad Gateway with partial result on transport failure", func() {
		partial := &usecase.ImportResult{Created: 4, Failed: []usecase.FailureRecord{}, Pages: 1}
		s.mockUseCase.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(partial, &wtt3.TransportError{PagesFetched: 1, Err: errors.New("connection refused")}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "transport failure")
	})

	s.Run("error: 500 Internal Server Error on unexpected failure", func() {
		s.mockUseCase.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&usecase.ImportResult{Failed: []usecase.FailureRecord{}}, errors.New("context deadline exceeded")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})

	s.Run("error: 400 Bad Request for a malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"start_date": "not-a-date"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *WTT3ImportHandlerTestSuite) TestDryRun() {
	url := "/imports/wtt3"
	reqBody := reqdto.RunImportRequest{DryRun: true}

	s.Run("success: returns reachability summary without importing", func() {
		s.mockUseCase.EXPECT().DryRun(gomock.Any(), gomock.Any()).
			Return(&usecase.DryRunResult{RecordCount: 25, HasMore: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.DryRunResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Reachable)
		s.Equal(25, response.RecordCount)
		s.True(response.HasMore)
	})

	s.Run("error: 502 Bad Gateway when the API is unreachable", func() {
		s.mockUseCase.EXPECT().DryRun(gomock.Any(), gomock.Any()).
			Return(nil, &wtt3.TransportError{Err: errors.New("no such host")}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "unreachable")
	})
}
