package restapi

import (
	"errors"
	"net/http"
	"time"

	"wayfinder.gobus.org/internal/metrics"
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/routing"
	"wayfinder.gobus.org/internal/utils"
)

// planTripEntry is the data payload of the plan-trip endpoint.
type planTripEntry struct {
	OriginID      string             `json:"originId"`
	DestinationID string             `json:"destinationId"`
	Itineraries   []models.Itinerary `json:"itineraries"`
}

func (api *RestAPI) planTripHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	originID := utils.SanitizeInput(query.Get("from"))
	destinationID := utils.SanitizeInput(query.Get("to"))
	locale := query.Get("locale")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateID(originID); err != nil {
		fieldErrors["from"] = append(fieldErrors["from"], err.Error())
	}
	if err := utils.ValidateID(destinationID); err != nil {
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
	}
	if err := utils.ValidateLocale(locale); err != nil {
		fieldErrors["locale"] = append(fieldErrors["locale"], err.Error())
	}
	maxTransfers, fieldErrors := utils.ParseIntParam(query, "maxTransfers", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	request := models.SearchRequest{
		OriginID:      originID,
		DestinationID: destinationID,
		MaxTransfers:  maxTransfers,
		Locale:        locale,
	}

	snapshot := api.ScheduleManager.Snapshot()

	start := time.Now()
	itineraries, err := api.Planner.Plan(r.Context(), snapshot, request)
	if err != nil {
		if routing.IsInvalidRequest(err) {
			api.rejectedPlanResponse(w, r, request, err)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	if api.Metrics != nil {
		api.Metrics.ObserveSearch(time.Since(start).Seconds(), len(itineraries))
	}

	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}

	entry := planTripEntry{
		OriginID:      request.OriginID,
		DestinationID: request.DestinationID,
		Itineraries:   itineraries,
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, planReferences(snapshot, itineraries)))
}

// rejectedPlanResponse maps an invalid-request error onto the offending
// query field.
func (api *RestAPI) rejectedPlanResponse(w http.ResponseWriter, r *http.Request, request models.SearchRequest, err error) {
	fieldErrors := make(map[string][]string)

	var unknownLocation *routing.UnknownLocationError
	switch {
	case errors.As(err, &unknownLocation):
		field := "from"
		if unknownLocation.ID == request.DestinationID {
			field = "to"
		}
		fieldErrors[field] = append(fieldErrors[field], err.Error())
		api.observeRejection(metrics.ReasonUnknownLocation)
	case errors.Is(err, routing.ErrSameLocation):
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
		api.observeRejection(metrics.ReasonSameLocation)
	case errors.Is(err, routing.ErrNegativeTransferLimit):
		fieldErrors["maxTransfers"] = append(fieldErrors["maxTransfers"], err.Error())
		api.observeRejection(metrics.ReasonNegativeTransfer)
	}

	api.validationErrorResponse(w, r, fieldErrors)
}

func (api *RestAPI) observeRejection(reason string) {
	if api.Metrics != nil {
		api.Metrics.ObserveRejection(reason)
	}
}
