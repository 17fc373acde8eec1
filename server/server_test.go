// SPDX-License-Identifier: MIT

package server_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/server"
	"github.com/katalvlaran/pennant/store"
)

func fixture(t testing.TB, name string) *division.Division {
	t.Helper()
	d, err := division.Load(filepath.Join("..", "division", "testdata", name))
	require.NoError(t, err)

	return d
}

// ServerSuite drives the HTTP API over a StaticSource.
type ServerSuite struct {
	suite.Suite
	ts *httptest.Server
}

func (s *ServerSuite) SetupSuite() {
	r, err := elimination.Compute(context.Background(), fixture(s.T(), "teams4.txt"))
	require.NoError(s.T(), err)
	s.ts = httptest.NewServer(server.New(server.StaticSource{"nl-east": r}))
}

func (s *ServerSuite) TearDownSuite() { s.ts.Close() }

// get performs a GET and decodes the JSON body into out.
func (s *ServerSuite) get(path string, out any) int {
	resp, err := http.Get(s.ts.URL + path)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	if out != nil {
		require.NoError(s.T(), json.Unmarshal(body, out), string(body))
	}

	return resp.StatusCode
}

func (s *ServerSuite) TestHealth() {
	var body map[string]string
	require.Equal(s.T(), http.StatusOK, s.get("/healthz", &body))
	require.Equal(s.T(), "ok", body["status"])
}

func (s *ServerSuite) TestDivisions() {
	var body struct {
		Divisions []string `json:"divisions"`
	}
	require.Equal(s.T(), http.StatusOK, s.get("/divisions", &body))
	require.Equal(s.T(), []string{"nl-east"}, body.Divisions)
}

func (s *ServerSuite) TestTeams() {
	var body struct {
		Division string                 `json:"division"`
		Teams    []elimination.Standing `json:"teams"`
	}
	require.Equal(s.T(), http.StatusOK, s.get("/divisions/nl-east/teams", &body))
	require.Equal(s.T(), "nl-east", body.Division)
	require.Len(s.T(), body.Teams, 4)
	require.Equal(s.T(), "Montreal", body.Teams[3].Name)
	require.True(s.T(), body.Teams[3].Eliminated)
	require.True(s.T(), body.Teams[3].Trivial)
}

func (s *ServerSuite) TestTeam() {
	var st elimination.Standing
	require.Equal(s.T(), http.StatusOK, s.get("/divisions/nl-east/teams/Philadelphia", &st))
	require.Equal(s.T(), elimination.Standing{
		Name: "Philadelphia", Wins: 80, Losses: 79, Remaining: 3,
		Eliminated: true, Certificate: []string{"Atlanta", "New_York"},
	}, st)
}

func (s *ServerSuite) TestCertificate() {
	var body struct {
		Team        string   `json:"team"`
		Eliminated  bool     `json:"eliminated"`
		Certificate []string `json:"certificate"`
	}
	require.Equal(s.T(), http.StatusOK, s.get("/divisions/nl-east/teams/Philadelphia/certificate", &body))
	require.True(s.T(), body.Eliminated)
	require.Equal(s.T(), []string{"Atlanta", "New_York"}, body.Certificate)

	body.Certificate = nil
	require.Equal(s.T(), http.StatusOK, s.get("/divisions/nl-east/teams/Atlanta/certificate", &body))
	require.False(s.T(), body.Eliminated)
	require.Nil(s.T(), body.Certificate)
}

func (s *ServerSuite) TestUnknownTeam() {
	var body struct {
		Error       string   `json:"error"`
		Suggestions []string `json:"suggestions"`
	}
	require.Equal(s.T(), http.StatusNotFound, s.get("/divisions/nl-east/teams/mont", &body))
	require.Equal(s.T(), []string{"Montreal"}, body.Suggestions)

	require.Equal(s.T(), http.StatusNotFound, s.get("/divisions/nl-east/teams/Boston/certificate", &body))
}

func (s *ServerSuite) TestUnknownDivision() {
	var body struct {
		Error string `json:"error"`
	}
	require.Equal(s.T(), http.StatusNotFound, s.get("/divisions/al-west/teams", &body))
	require.Contains(s.T(), body.Error, "al-west")
}

func (s *ServerSuite) TestMetrics() {
	s.get("/healthz", nil)
	s.get("/divisions/nl-east/teams", nil)

	resp, err := http.Get(s.ts.URL + "/metrics")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	text := string(raw)
	require.Contains(s.T(), text, `pennant_http_requests_total{method="GET",route="/healthz",status="200"}`)
	require.Contains(s.T(), text, `route="/divisions/{division}/teams"`)
	require.Contains(s.T(), text, `pennant_reports_served_total{division="nl-east"}`)
	require.Contains(s.T(), text, "pennant_http_request_duration_seconds_bucket")
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

// failingSource always fails with an internal error.
type failingSource struct{}

func (failingSource) Divisions(context.Context) ([]string, error) { return nil, errors.New("db down") }
func (failingSource) Report(context.Context, string) (*elimination.Report, error) {
	return nil, errors.New("db down")
}

func TestInternalErrors(t *testing.T) {
	for _, debug := range []bool{false, true} {
		h := server.New(failingSource{}, server.WithDebug(debug))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/divisions", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		if debug {
			require.Contains(t, rec.Body.String(), "db down")
		} else {
			require.NotContains(t, rec.Body.String(), "db down")
		}
	}
}

func TestStoreSource(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, store.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer st.Close()

	d4 := fixture(t, "teams4.txt")
	d5 := fixture(t, "teams5.txt")
	require.NoError(t, st.SaveDivision(ctx, "teams4", d4))
	require.NoError(t, st.SaveDivision(ctx, "teams5", d5))
	r5, err := elimination.Compute(ctx, d5)
	require.NoError(t, err)
	require.NoError(t, st.SaveVerdicts(ctx, "teams5", r5.Verdicts()))

	src := server.NewStoreSource(st, elimination.WithAlgorithm("ford-fulkerson"))

	names, err := src.Divisions(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"teams4", "teams5"}, names)

	// computed on demand
	r4, err := src.Report(ctx, "teams4")
	require.NoError(t, err)
	require.Equal(t, []string{"Philadelphia", "Montreal"}, r4.Eliminated())
	again, err := src.Report(ctx, "teams4")
	require.NoError(t, err)
	require.Same(t, r4, again)

	// rebuilt from saved verdicts
	got5, err := src.Report(ctx, "teams5")
	require.NoError(t, err)
	require.Equal(t, r5.Verdicts(), got5.Verdicts())

	src.Invalidate("teams4")
	fresh, err := src.Report(ctx, "teams4")
	require.NoError(t, err)
	require.NotSame(t, r4, fresh)

	_, err = src.Report(ctx, "teams9")
	require.ErrorIs(t, err, server.ErrDivisionNotFound)

	// the same source behind the HTTP API
	rec := httptest.NewRecorder()
	server.New(src).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/divisions/teams5/teams/Detroit/certificate", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"certificate":["New_York","Baltimore","Boston","Toronto"]`)
}
