//go:build e2e

package wtt3import_test

import (
	"context"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"roomsync/internal/handler/dto/response"
	"roomsync/internal/infra/wtt3"
	"roomsync/tests/common/dbtest"
	"roomsync/tests/common/httptest"
	"roomsync/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const importURL = "/api/imports/wtt3"

type WTT3ImportSuite struct {
	e2e.SharedSuite
}

func TestWTT3ImportSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WTT3ImportSuite))
}

// stubAPI serves canned pages keyed by the "page" query parameter; the empty
// key is the first page. A nil page value makes the stub answer 500, which
// lets tests break the feed mid-run.
func stubAPI(t *testing.T, pages map[string]*wtt3.Page) *nethttptest.Server {
	t.Helper()

	var srv *nethttptest.Server
	srv = nethttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Query().Get("page")]
		if !ok || page == nil {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		out := *page
		if out.Next != nil {
			next := srv.URL + "/reservations?page=" + *out.Next
			out.Next = &next
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func record(id, slug, ownerEmail string, start time.Time, d time.Duration, reason string) wtt3.Record {
	return wtt3.Record{
		ID:             id,
		ReservableSlug: slug,
		OwnerEmail:     ownerEmail,
		Start:          start.Format(time.RFC3339),
		End:            start.Add(d).Format(time.RFC3339),
		Reason:         reason,
	}
}

func (s *WTT3ImportSuite) countReservations() int {
	var n int
	require.NoError(s.T(), s.DB.QueryRow(context.Background(), "SELECT count(*) FROM reservations").Scan(&n))
	return n
}

func (s *WTT3ImportSuite) runImport(body map[string]any) (*nethttptest.ResponseRecorder, response.ImportRunResponse) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, importURL, body, "")
	var result response.ImportRunResponse
	if w.Code == http.StatusOK {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &result))
	}
	return w, result
}

func (s *WTT3ImportSuite) TestRunImport() {
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	s.Run("Normal case: two pages imported, second run is idempotent", func() {
		t := s.T()

		one := "2"
		srv := stubAPI(t, map[string]*wtt3.Page{
			"": {
				Results: []wtt3.Record{
					record("wtt3-1", "room-101", "", monday, time.Hour, "Algorithms lecture"),
					record("wtt3-2", "room-101", "", monday.Add(2*time.Hour), time.Hour, "Databases lecture"),
				},
				Next: &one,
			},
			"2": {
				Results: []wtt3.Record{
					record("wtt3-3", "lab-2", "", monday, 2*time.Hour, "OS practical"),
				},
			},
		})

		w, result := s.runImport(map[string]any{"api_url": srv.URL})
		require.Equal(t, http.StatusOK, w.Code)
		expected := response.ImportRunResponse{
			Created: 3,
			Failed:  []response.ImportFailureResponse{},
			Pages:   2,
		}
		require.Empty(t, cmp.Diff(expected, result))
		require.Equal(t, 3, s.countReservations())

		// Re-importing the same feed rewrites every row in place.
		w, result = s.runImport(map[string]any{"api_url": srv.URL})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 0, result.Created)
		require.Equal(t, 3, result.Updated)
		require.Equal(t, 3, s.countReservations())
	})

	s.Run("Normal case: mixed pages count creates, updates and failures", func() {
		t := s.T()

		roomID := dbtest.CreateTestReservable(t, s.DB, "room-101", "Room 101")
		seen := "wtt3-seen"
		dbtest.CreateTestReservation(t, s.DB, &seen, roomID, nil, monday, monday.Add(time.Hour), "stale slot")

		one := "2"
		srv := stubAPI(t, map[string]*wtt3.Page{
			"": {
				Results: []wtt3.Record{
					record("wtt3-new-1", "room-101", "", monday.Add(4*time.Hour), time.Hour, ""),
					record("wtt3-new-2", "lab-2", "", monday, time.Hour, ""),
					record("wtt3-seen", "room-101", "", monday.Add(6*time.Hour), time.Hour, "moved slot"),
				},
				Next: &one,
			},
			"2": {
				Results: []wtt3.Record{
					record("wtt3-ghost", "no-such-room", "", monday, time.Hour, ""),
				},
			},
		})

		w, result := s.runImport(map[string]any{"api_url": srv.URL})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 2, result.Created)
		require.Equal(t, 1, result.Updated)
		require.Len(t, result.Failed, 1)
		require.Equal(t, "wtt3-ghost", result.Failed[0].ExternalID)
		require.Equal(t, "UNKNOWN_RESERVABLE", result.Failed[0].Kind)

		// The seen record was moved to its new slot, not duplicated.
		var start time.Time
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT start_at FROM reservations WHERE external_id = $1", seen).Scan(&start))
		require.True(t, start.Equal(monday.Add(6*time.Hour)))
		require.Equal(t, 3, s.countReservations())
	})

	s.Run("Error case: unknown owner fails the record unless creation is allowed", func() {
		t := s.T()

		srv := stubAPI(t, map[string]*wtt3.Page{
			"": {
				Results: []wtt3.Record{
					record("wtt3-owned", "room-101", "jane.doe@uni.edu", monday, time.Hour, ""),
				},
			},
		})

		w, result := s.runImport(map[string]any{"api_url": srv.URL})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 0, result.Created)
		require.Len(t, result.Failed, 1)
		require.Equal(t, "UNKNOWN_OWNER", result.Failed[0].Kind)
		require.Equal(t, 0, s.countReservations())

		w, result = s.runImport(map[string]any{"api_url": srv.URL, "allow_owner_create": true})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, result.Created)
		require.Empty(t, result.Failed)

		var displayName string
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT display_name FROM users WHERE email = $1", "jane.doe@uni.edu").Scan(&displayName))
		require.NotEmpty(t, displayName)
	})

	s.Run("Error case: transport failure mid-run keeps partial progress", func() {
		t := s.T()

		one := "2"
		srv := stubAPI(t, map[string]*wtt3.Page{
			"": {
				Results: []wtt3.Record{
					record("wtt3-1", "room-101", "", monday, time.Hour, ""),
				},
				Next: &one,
			},
			"2": nil, // stub answers 500
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, importURL, map[string]any{"api_url": srv.URL}, "")
		require.Equal(t, http.StatusBadGateway, w.Code)

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail struct {
				Pages  int                        `json:"pages"`
				Result response.ImportRunResponse `json:"result"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Contains(t, body.Error.Message, "transport failure")
		require.Equal(t, 1, body.Detail.Pages)
		require.Equal(t, 1, body.Detail.Result.Created)

		// Page 1 landed before the feed broke.
		require.Equal(t, 1, s.countReservations())
	})

	s.Run("Normal case: dry run touches nothing", func() {
		t := s.T()

		two := "2"
		srv := stubAPI(t, map[string]*wtt3.Page{
			"": {
				Results: []wtt3.Record{
					record("wtt3-1", "room-101", "", monday, time.Hour, ""),
					record("wtt3-2", "lab-2", "", monday, time.Hour, ""),
				},
				Next: &two,
			},
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, importURL, map[string]any{"api_url": srv.URL, "dry_run": true}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var dry response.DryRunResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &dry))
		require.True(t, dry.Reachable)
		require.Equal(t, 2, dry.RecordCount)
		require.True(t, dry.HasMore)
		require.Equal(t, 0, s.countReservations())
	})

	s.Run("Error case: unreachable API answers 502", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, importURL, map[string]any{"api_url": "http://127.0.0.1:1", "dry_run": true}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "unreachable")
	})
}
