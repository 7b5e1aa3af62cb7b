package restapi

import (
	"net/http"

	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/utils"
)

func (api *RestAPI) locationHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromPath(r, "id")

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snapshot := api.ScheduleManager.Snapshot()
	location, ok := snapshot.Location(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(location, models.NewEmptyReferences()))
}

func (api *RestAPI) locationsHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.ScheduleManager.Snapshot()

	locations := snapshot.Locations()
	list := make([]models.Location, 0, len(locations))
	for _, location := range locations {
		list = append(list, *location)
	}

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences()))
}
