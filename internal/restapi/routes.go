package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/where/plan-trip.json", validateAPIKey(api, api.planTripHandler))
	mux.Handle("GET /api/where/location/{id}", validateAPIKey(api, api.locationHandler))
	mux.Handle("GET /api/where/locations.json", validateAPIKey(api, api.locationsHandler))
	mux.Handle("GET /api/where/trip/{id}", validateAPIKey(api, api.tripHandler))
	mux.Handle("GET /api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))

	if api.Metrics != nil {
		mux.Handle("GET /metrics", api.Metrics.Handler())
	}
}
