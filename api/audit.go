package api

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/log.go/v2/log"
)

// commissionEventsQuery mirrors the audit console's filter form
type commissionEventsQuery struct {
	Query       string `schema:"q"`
	Action      string `schema:"action"`
	StatusAfter string `schema:"status_after"`
	Actor       string `schema:"actor"`
	DateFrom    string `schema:"date_from"`
	DateTo      string `schema:"date_to"`
}

// commissionEventCounts is the per-action aggregate over a filtered trail
type commissionEventCounts struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

func (api *ApplicationsAPI) getCommissionEvents(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	ctx := r.Context()
	logData := log.Data{}

	filter, err := api.parseCommissionEventsFilter(r)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	events, totalCount, err := api.dataStore.Backend.GetCommissionEvents(ctx, filter, offset, limit)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	return events, totalCount, nil
}

func (api *ApplicationsAPI) getCommissionEventCounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logData := log.Data{}

	filter, err := api.parseCommissionEventsFilter(r)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	counts, err := api.dataStore.Backend.CountCommissionEventsByAction(ctx, filter)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	writeJSON(ctx, w, http.StatusOK, commissionEventCounts{Counts: counts, Total: total}, logData)
}

// exportCommissionEvents streams the filtered audit trail as a CSV or NDJSON
// download. Rows are written as they arrive from the store, so an export is
// never held in memory.
func (api *ApplicationsAPI) exportCommissionEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logData := log.Data{}

	filter, err := api.parseCommissionEventsFilter(r)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	logData["format"] = format

	filename := fmt.Sprintf("commission-events-%s.%s", time.Now().UTC().Format("20060102"), format)
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		err = api.exportCSV(ctx, w, filter)
	case "ndjson":
		w.Header().Set("Content-Type", "application/x-ndjson")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		err = api.exportNDJSON(ctx, w, filter)
	default:
		handleAPIErr(ctx, errs.ErrInvalidQueryParameter, w, logData)
		return
	}

	// headers are already on the wire, so a mid-stream failure can only be logged
	if err != nil {
		log.Error(ctx, "audit export failed mid-stream", err, logData)
		return
	}

	log.Info(ctx, "audit export complete", logData)
}

func (api *ApplicationsAPI) exportCSV(ctx context.Context, w http.ResponseWriter, filter models.CommissionEventsFilter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.CommissionEvent{}.CSVHeader()); err != nil {
		return err
	}

	err := api.dataStore.Backend.StreamCommissionEvents(ctx, filter, func(event *models.CommissionEvent) error {
		return cw.Write(event.CSVRow())
	})
	if err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func (api *ApplicationsAPI) exportNDJSON(ctx context.Context, w http.ResponseWriter, filter models.CommissionEventsFilter) error {
	encoder := json.NewEncoder(w)
	return api.dataStore.Backend.StreamCommissionEvents(ctx, filter, func(event *models.CommissionEvent) error {
		return encoder.Encode(event)
	})
}

// parseCommissionEventsFilter decodes the audit filter query parameters.
// Dates are inclusive whole days.
func (api *ApplicationsAPI) parseCommissionEventsFilter(r *http.Request) (models.CommissionEventsFilter, error) {
	var query commissionEventsQuery
	if err := api.formDecoder.Decode(&query, r.URL.Query()); err != nil {
		return models.CommissionEventsFilter{}, errs.ErrInvalidQueryParameter
	}

	filter := models.CommissionEventsFilter{
		Query:     strings.TrimSpace(query.Query),
		Action:    query.Action,
		NewStatus: query.StatusAfter,
		ActorID:   query.Actor,
	}

	if query.DateFrom != "" {
		day, err := time.Parse("2006-01-02", query.DateFrom)
		if err != nil {
			return filter, errs.ErrInvalidQueryParameter
		}
		from := day.UTC()
		filter.From = &from
	}
	if query.DateTo != "" {
		day, err := time.Parse("2006-01-02", query.DateTo)
		if err != nil {
			return filter, errs.ErrInvalidQueryParameter
		}
		to := models.EndOfDay(day)
		filter.To = &to
	}

	return filter, nil
}
