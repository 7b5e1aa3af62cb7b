package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripHandlerReturnsTripWithVisits(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/trip/T1.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryMap(t, model)
	assert.Equal(t, "T1", entry["id"])
	assert.Equal(t, "Route 1", entry["label"])

	visits, ok := entry["visits"].([]interface{})
	require.True(t, ok)
	assert.Len(t, visits, 3)

	references, ok := dataMap(t, model)["references"].(map[string]interface{})
	require.True(t, ok)
	locations, ok := references["locations"].([]interface{})
	require.True(t, ok)
	assert.Len(t, locations, 3, "references carry the visited locations")
}

func TestTripHandlerUnknownIDIs404(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/trip/T99.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
