// Harvestwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/harvestwise

package api

import (
	"net/http"

	"github.com/tomtom215/harvestwise/internal/models"
)

// Crops handles GET /api/v1/crops.
// Returns the reference profile of each candidate crop in evaluation order.
func (h *Handler) Crops(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	tables := h.engine.Tables()
	crops := make([]models.CropInfo, 0, len(tables.Candidates))
	for _, crop := range tables.Candidates {
		crops = append(crops, models.CropInfo{
			Name:        crop.String(),
			CropProfile: tables.Profile(crop),
		})
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   models.CropsData{Crops: crops},
	})
}
