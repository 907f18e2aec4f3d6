package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/models"
	"p9e.in/crewcall/utils"
)

// vendorView is the listing row: a vendor annotated with distance from the
// active region's center (nil when no coordinates or no region filter) and
// the availability badge.
type vendorView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	City         *string   `json:"city,omitempty"`
	State        *string   `json:"state,omitempty"`
	Skills       []string  `json:"skills,omitempty"`
	DistanceKm   *float64  `json:"distanceKm,omitempty"`
	Availability string    `json:"availability"`
}

// GetAllVendors lists vendors. With ?region=<id or code>, results are
// restricted to the region's catchment and sorted by distance from its
// center ascending, coordinate-less vendors last; without it, results are
// alphabetical by name, case-insensitive. Vendors without coordinates are
// never dropped, they just carry no distance.
func GetAllVendors(w http.ResponseWriter, r *http.Request) {
	params := models.ParseListParams(r)

	var region *models.Region
	if key := r.URL.Query().Get("region"); key != "" {
		var rg models.Region
		if err := config.DB.Where("id::text = ? OR code = ?", key, key).First(&rg).Error; err != nil {
			respondError(w, http.StatusNotFound, "region not found")
			return
		}
		region = &rg
	}

	var vendors []models.User
	if err := config.DB.
		Where("role = ? AND is_active = ?", models.RoleVendor, true).
		Find(&vendors).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	views := buildVendorViews(vendors, region, latestAvailability, models.Today())

	// Paginate after filtering so region scoping sees the whole directory.
	total := len(views)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
		"data":  views[start:end],
	})
}

// buildVendorViews applies the region filter, distance annotation and sort
// order. Pure over its inputs so the contract is testable without a DB.
func buildVendorViews(vendors []models.User, region *models.Region,
	latest func(uuid.UUID) *models.AvailabilityResponse, today models.Date) []vendorView {

	views := make([]vendorView, 0, len(vendors))
	for _, v := range vendors {
		coord, hasCoord := utils.ParseLatLng(v.Latitude, v.Longitude)

		var dist *float64
		if region != nil {
			if hasCoord {
				if !region.Contains(coord) {
					continue
				}
				d := utils.DistanceKm(coord, utils.Coordinate{Lat: region.CenterLat, Lng: region.CenterLng})
				dist = &d
			}
			// Vendors without coordinates stay in the result with no
			// distance; bad location data never excludes anyone.
		}

		view := vendorView{
			ID:         v.ID,
			Name:       v.Name,
			Email:      v.Email,
			City:       v.City,
			State:      v.State,
			Skills:     v.Skills,
			DistanceKm: dist,
		}
		if latest != nil {
			view.Availability = models.AvailabilityStateOn(latest(v.ID), today)
		}
		views = append(views, view)
	}

	if region != nil {
		sort.SliceStable(views, func(i, j int) bool {
			if less, decided := utils.LessDistance(views[i].DistanceKm, views[j].DistanceKm); decided {
				return less
			}
			return strings.ToLower(views[i].Name) < strings.ToLower(views[j].Name)
		})
	} else {
		sort.SliceStable(views, func(i, j int) bool {
			return strings.ToLower(views[i].Name) < strings.ToLower(views[j].Name)
		})
	}

	return views
}

// latestAvailability fetches a vendor's most recent availability response,
// or nil.
func latestAvailability(userID uuid.UUID) *models.AvailabilityResponse {
	var resp models.AvailabilityResponse
	err := config.DB.
		Where("user_id = ?", userID).
		Order("responded_at DESC").
		First(&resp).Error
	if err != nil {
		return nil
	}
	return &resp
}

// GetVendor returns one vendor record.
func GetVendor(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var vendor models.User
	if err := config.DB.Where("id = ? AND role = ?", id, models.RoleVendor).First(&vendor).Error; err != nil {
		respondError(w, http.StatusNotFound, "vendor not found")
		return
	}
	respondJSON(w, http.StatusOK, vendor)
}
