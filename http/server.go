package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/resumebase/visitcount/config"
	"github.com/resumebase/visitcount/constants"
	"github.com/resumebase/visitcount/counter"
	"github.com/resumebase/visitcount/store"
	"github.com/resumebase/visitcount/telemetry"
	"github.com/resumebase/visitcount/utils"
)

// ServeHTTP adapts the dispatcher to net/http for local serving. Same
// semantics as the Lambda path, including panic containment.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := utils.WithRequestID(r.Context(), uuid.NewString())

	defer func() {
		if rec := recover(); rec != nil {
			utils.ErrorCtx(ctx, "Unexpected error", "panic", rec)
			writeResponse(w, internalErrorResponse())
		}
	}()

	writeResponse(w, h.Dispatch(ctx, r.Method))
}

func writeResponse(w http.ResponseWriter, res Response) {
	for k, v := range CORSHeaders() {
		w.Header().Set(k, v)
	}
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(res.Status)
	if err := json.NewEncoder(w).Encode(res.Body); err != nil {
		utils.Error(constants.LogFailedEncodeJSON, err)
	}
}

// NewMux builds the local-serve multiplexer: the counter on /, a health
// check, and prometheus metrics.
func NewMux(h *Handler, svc *counter.Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", telemetry.WrapHandler("counter", h))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		health := svc.Health(r.Context())
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		if err := json.NewEncoder(w).Encode(health); err != nil {
			utils.Error(constants.LogFailedEncodeJSON, err)
		}
	})
	mux.Handle("/metrics", telemetry.MetricsHandler())
	return mux
}

// StartServer wires store, service, and handler from config and serves until
// the listener fails. The store client is built once and shared.
func StartServer(cfg *config.Config) error {
	ctx := utils.WithRequestID(context.Background(), uuid.NewString())

	st, err := store.NewFromConfig(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	telemetry.Init(cfg)

	svc := counter.NewService(st, cfg.Store.Table)
	mux := NewMux(NewHandler(svc), svc)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	utils.Info("visitcount listening on %s (driver=%s table=%s)", addr, cfg.Store.Driver, cfg.Store.Table)
	return http.ListenAndServe(addr, mux)
}
