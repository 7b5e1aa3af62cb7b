package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"wayfinder.gobus.org/internal/app"
	"wayfinder.gobus.org/internal/appconf"
	"wayfinder.gobus.org/internal/enrich"
	"wayfinder.gobus.org/internal/logging"
	"wayfinder.gobus.org/internal/metrics"
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/routing"
	"wayfinder.gobus.org/internal/schedule"
)

// createTestApi creates a RestAPI instance with a schedule manager loaded
// from the CSV fixtures for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	scheduleConfig := schedule.Config{
		CSVDir:   "../../testdata/schedule",
		DataPath: ":memory:",
		Env:      appconf.Test,
	}
	manager, err := schedule.InitManager(scheduleConfig, slog.Default())
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		Logger:          slog.Default(),
		ScheduleManager: manager,
		Planner: routing.NewPlanner(routing.DefaultOptions(),
			enrich.NewLocaleEnricher(manager.ScheduleDB.Queries)),
		Metrics: metrics.NewCollector(),
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp := serveApiRaw(t, api, endpoint)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err := json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveApiRaw makes a request without decoding the body, for endpoints that
// do not answer with the standard envelope.
func serveApiRaw(t *testing.T, api *RestAPI, endpoint string) *http.Response {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	return resp
}

// dataMap extracts the data field of an envelope as a map.
func dataMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object, got %T", model.Data)
	return data
}

// entryMap extracts data.entry as a map.
func entryMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	entry, ok := dataMap(t, model)["entry"].(map[string]interface{})
	require.True(t, ok, "response entry should be an object")
	return entry
}
