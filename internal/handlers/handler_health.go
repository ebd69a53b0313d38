package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/middleware"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/entitycache"
	"github.com/gin-gonic/gin"
)

const storeCheckTimeout = 2 * time.Second

// StoreCheck probes a backing store, returning nil when it is reachable.
type StoreCheck func(ctx context.Context) error

// storeStatus is the health of one backing store. Error details stay in the log.
type storeStatus struct {
	Reachable bool `json:"reachable"`
}

// cacheRefreshFailed replaces cache refresh errors in the public response.
const cacheRefreshFailed = "refresh failed"

// StoresHealthResponse reports the backing stores and the freshness of every entity cache.
type StoresHealthResponse struct {
	Status string                        `json:"status"`
	Stores map[string]storeStatus        `json:"stores"`
	Caches map[string]entitycache.Status `json:"caches"`
}

type healthHandler struct {
	services *portssvc.ServiceContainer
	checks   map[string]StoreCheck
}

func registerHealthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, checks map[string]StoreCheck) {
	h := &healthHandler{services: services, checks: checks}

	r.GET("/health", h.health)
	r.GET("/health/stores", h.stores)
}

// health godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *healthHandler) health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// stores godoc
// @Summary Store health
// @Description Reports whether the database and cache stores answer, and how fresh each entity cache is.
// @Tags health
// @Produce json
// @Success 200 {object} StoresHealthResponse
// @Failure 503 {object} StoresHealthResponse
// @Router /health/stores [get]
func (h *healthHandler) stores(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	res := StoresHealthResponse{
		Status: "ok",
		Stores: make(map[string]storeStatus, len(h.checks)),
		Caches: map[string]entitycache.Status{
			"suppliers": h.services.Supplier.SupplierCacheStatus(),
			"carriers":  h.services.Carrier.CarrierCacheStatus(),
			"purchases": h.services.Purchase.PurchaseCacheStatus(),
		},
	}
	for name, st := range res.Caches {
		if st.LastError != "" {
			logger.Warn("Entity cache refresh failed", slog.String("cache", name), slog.String("error", st.LastError))
			st.LastError = cacheRefreshFailed
			res.Caches[name] = st
		}
	}

	for name, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeCheckTimeout)
		err := check(ctx)
		cancel()
		if err != nil {
			logger.Warn("Store check failed", slog.String("store", name), slog.String("error", err.Error()))
			res.Stores[name] = storeStatus{Reachable: false}
			res.Status = "degraded"
			continue
		}
		res.Stores[name] = storeStatus{Reachable: true}
	}

	status := http.StatusOK
	if res.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, res)
}
