package restapi

import (
	"net/http"

	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/utils"
)

func (api *RestAPI) tripHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromPath(r, "id")

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snapshot := api.ScheduleManager.Snapshot()
	trip, ok := snapshot.Trip(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(trip, tripReferences(snapshot, trip)))
}
