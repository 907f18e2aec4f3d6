package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/models"
	"p9e.in/crewcall/utils"
)

func GetAllRegions(w http.ResponseWriter, r *http.Request) {
	var regions []models.Region
	if err := config.DB.Where("is_active = ?", true).Order("name").Find(&regions).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, regions)
}

func GetRegion(w http.ResponseWriter, r *http.Request) {
	var region models.Region
	if err := config.DB.First(&region, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "region not found")
		return
	}
	respondJSON(w, http.StatusOK, region)
}

func CreateRegion(w http.ResponseWriter, r *http.Request) {
	var region models.Region
	if err := json.NewDecoder(r.Body).Decode(&region); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if region.Name == "" || region.Code == "" {
		respondError(w, http.StatusBadRequest, "name and code are required")
		return
	}
	center := utils.Coordinate{Lat: region.CenterLat, Lng: region.CenterLng}
	if !center.Valid() {
		respondError(w, http.StatusBadRequest, "center coordinates out of range")
		return
	}
	// A polygon boundary implies its centroid as the center when none was
	// given.
	if c := region.Catchment(); len(c.Boundary) >= 3 && region.CenterLat == 0 && region.CenterLng == 0 {
		centroid := utils.PolygonCentroid(c.Boundary)
		region.CenterLat = centroid.Lat
		region.CenterLng = centroid.Lng
	}
	region.IsActive = true

	if err := config.DB.Create(&region).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, region)
}

func UpdateRegion(w http.ResponseWriter, r *http.Request) {
	var region models.Region
	if err := config.DB.First(&region, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "region not found")
		return
	}
	id := region.ID
	if err := json.NewDecoder(r.Body).Decode(&region); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	region.ID = id
	if !(utils.Coordinate{Lat: region.CenterLat, Lng: region.CenterLng}).Valid() {
		respondError(w, http.StatusBadRequest, "center coordinates out of range")
		return
	}
	if err := config.DB.Save(&region).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, region)
}

func DeleteRegion(w http.ResponseWriter, r *http.Request) {
	result := config.DB.Where("id = ?", pathID(r)).Delete(&models.Region{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete region")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "region not found")
		return
	}
	respondSuccess(w)
}

// ResolveRegion answers "which region is this point in": the containing
// region with the nearest center, or null when the point is outside every
// catchment.
func ResolveRegion(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		respondError(w, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}
	pt := utils.Coordinate{Lat: lat, Lng: lng}
	if !pt.Valid() {
		respondError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	var regions []models.Region
	if err := config.DB.Where("is_active = ?", true).Find(&regions).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	catchments := make([]utils.Catchment, len(regions))
	for i := range regions {
		catchments[i] = regions[i].Catchment()
	}

	idx := utils.NearestContaining(pt, catchments)
	if idx < 0 {
		respondJSON(w, http.StatusOK, map[string]interface{}{"region": nil})
		return
	}
	d := utils.DistanceKm(pt, catchments[idx].Center)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"region":     regions[idx],
		"distanceKm": d,
	})
}
