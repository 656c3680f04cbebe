package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/greenmesh/iot-moisture-svc/internal/pkg/application/readings"
	"github.com/greenmesh/iot-moisture-svc/pkg/types"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-moisture-svc/api")

const serviceName string = "iot-moisture-svc"

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc readings.ReadingService) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	router.Get("/health", healthHandler())

	router.Route("/api", func(r chi.Router) {
		r.Use(recoverer(log))

		r.Post("/moisture", submitReadingHandler(log, svc))
		r.Get("/moisture/{potID}", readingHistoryHandler(log, svc))
		r.Get("/pots/latest", latestPerPotHandler(log, svc))
		r.Get("/pots", listPotsHandler(log, svc))
		r.Delete("/readings/cleanup", cleanupReadingsHandler(log, svc))
	})

	return router, nil
}

// recoverer maps any panic escaping a handler to the uniform error envelope.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Error("recovered from panic in handler", "recover", fmt.Sprintf("%v", rvr), "path", r.URL.Path)
					writeError(w, http.StatusInternalServerError, "internal server error", fmt.Sprintf("%v", rvr))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Service:   serviceName,
			Version:   buildinfo.SourceVersion(),
		}.Byte())
	}
}

func submitReadingHandler(log *slog.Logger, svc readings.ReadingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "submit-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "unable to read request body", err.Error())
			return
		}

		var incoming types.IncomingReading
		err = json.Unmarshal(body, &incoming)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}

		reading, err := svc.Submit(ctx, incoming)
		if err != nil {
			if errors.Is(err, readings.ErrInvalidReading) {
				requestLogger.Debug("rejected reading", "err", err.Error())
				writeError(w, http.StatusBadRequest, "validation failed", err.Error())
				return
			}
			requestLogger.Error("could not store reading", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "could not store reading", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, apiResponse{
			Success: true,
			Data:    reading,
		}.Byte())
	}
}

func readingHistoryHandler(log *slog.Logger, svc readings.ReadingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "reading-history")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		potID := chi.URLParam(r, "potID")

		limit := 0
		if q := r.URL.Query().Get("limit"); q != "" {
			limit, err = strconv.Atoi(q)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid limit parameter", err.Error())
				return
			}
		}

		result, err := svc.History(ctx, potID, limit)
		if err != nil {
			requestLogger.Error("could not fetch readings", "pot_id", potID, "err", err.Error())
			writeError(w, http.StatusInternalServerError, "could not fetch readings", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, apiResponse{
			Success: true,
			PotID:   potID,
			Count:   count(len(result)),
			Data:    result,
		}.Byte())
	}
}

func latestPerPotHandler(log *slog.Logger, svc readings.ReadingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "latest-per-pot")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := svc.LatestPerPot(ctx)
		if err != nil {
			requestLogger.Error("could not fetch latest readings", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "could not fetch latest readings", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, apiResponse{
			Success: true,
			Count:   count(len(result)),
			Data:    result,
		}.Byte())
	}
}

func listPotsHandler(log *slog.Logger, svc readings.ReadingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-pots")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := svc.ListPots(ctx)
		if err != nil {
			requestLogger.Error("could not fetch pots", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "could not fetch pots", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, apiResponse{
			Success: true,
			Count:   count(len(result)),
			Data:    result,
		}.Byte())
	}
}

func cleanupReadingsHandler(log *slog.Logger, svc readings.ReadingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "cleanup-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		days := readings.DefaultRetentionDays
		if q := r.URL.Query().Get("days"); q != "" {
			days, err = strconv.Atoi(q)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid days parameter", err.Error())
				return
			}
		}

		removed, err := svc.Cleanup(ctx, days)
		if err != nil {
			requestLogger.Error("could not delete readings", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "could not delete readings", err.Error())
			return
		}

		requestLogger.Info("readings deleted", "count", removed, "days", days)

		writeJSON(w, http.StatusOK, apiResponse{
			Success: true,
			Deleted: deleted(removed),
			Message: fmt.Sprintf("deleted %d readings older than %d days", removed, days),
		}.Byte())
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func writeError(w http.ResponseWriter, statusCode int, summary, details string) {
	writeJSON(w, statusCode, errorResponse{
		Error:   summary,
		Details: details,
	}.Byte())
}
