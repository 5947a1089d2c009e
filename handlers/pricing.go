// ABOUTME: HTTP handler for the read-only pricing information endpoint
// ABOUTME: Responses are cached with a TTL; the catalog itself is static

package handlers

import (
	"net/http"

	"clab-gcp-planner/models"
	"clab-gcp-planner/pricing"
)

// Pricing returns catalog pricing for one machine type
// (?machine_type=n2-standard-4) or the full catalog listing.
func (h *Handler) Pricing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	region, err := h.resolveRegion(r.URL.Query().Get("region"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	machineType := r.URL.Query().Get("machine_type")

	cacheKey := "pricing:" + region + ":" + machineType
	if cached, found := h.cache.Get(cacheKey); found {
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	info := models.PricingInfo{Region: region}
	if machineType != "" {
		spec, err := pricing.Lookup(machineType, false)
		if err != nil {
			h.writePlanError(w, err)
			return
		}
		info.MachineType = machineType
		info.Pricing = &spec
	} else {
		info.AvailableMachineTypes = pricing.MachineTypes()
		info.SpotDiscount = pricing.SpotDiscount
	}

	h.cache.Set(cacheKey, info)
	h.writeJSON(w, http.StatusOK, info)
}
