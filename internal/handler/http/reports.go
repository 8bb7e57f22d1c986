package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/models"
)

// reportID parses the {id} URL parameter. A malformed ID answers 404 like
// any other unknown report.
func reportID(w http.ResponseWriter, r *http.Request, fn string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Debug().Str("func", fn).Str("id", chi.URLParam(r, "id")).Msg("malformed report id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "report not found"}, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r, "*Handler.createReport")
	if !ok {
		return
	}
	var req models.ReportCreateRequest
	if !decodeJSON(w, r, &req, "*Handler.createReport") {
		return
	}

	report, err := h.services.ReportService.CreateReport(r.Context(), uid, req)
	if err != nil {
		writeError(w, r, err, "*Handler.createReport")
		return
	}

	utils.WriteJSON(w, report, http.StatusCreated)
}

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r, "*Handler.listReports")
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := models.ReportFilter{
		UserID: uid,
		Tag:    query.Get("tag"),
		Period: models.Period(query.Get("period")),
		Sort:   models.SortOrder(query.Get("sort")),
	}

	list, err := h.services.ReportService.ListReports(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listReports")
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r, "*Handler.getReport")
	if !ok {
		return
	}
	id, ok := reportID(w, r, "*Handler.getReport")
	if !ok {
		return
	}

	report, err := h.services.ReportService.GetReport(r.Context(), uid, id)
	if err != nil {
		writeError(w, r, err, "*Handler.getReport")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) updateReport(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r, "*Handler.updateReport")
	if !ok {
		return
	}
	id, ok := reportID(w, r, "*Handler.updateReport")
	if !ok {
		return
	}
	var req models.ReportUpdateRequest
	if !decodeJSON(w, r, &req, "*Handler.updateReport") {
		return
	}

	report, err := h.services.ReportService.UpdateReport(r.Context(), uid, id, req)
	if err != nil {
		writeError(w, r, err, "*Handler.updateReport")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) deleteReport(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r, "*Handler.deleteReport")
	if !ok {
		return
	}
	id, ok := reportID(w, r, "*Handler.deleteReport")
	if !ok {
		return
	}

	if err := h.services.ReportService.DeleteReport(r.Context(), uid, id); err != nil {
		writeError(w, r, err, "*Handler.deleteReport")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addTag(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r, "*Handler.addTag")
	if !ok {
		return
	}
	id, ok := reportID(w, r, "*Handler.addTag")
	if !ok {
		return
	}
	var req models.TagRequest
	if !decodeJSON(w, r, &req, "*Handler.addTag") {
		return
	}

	report, err := h.services.ReportService.AddTag(r.Context(), uid, id, req)
	if err != nil {
		writeError(w, r, err, "*Handler.addTag")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) removeTag(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r, "*Handler.removeTag")
	if !ok {
		return
	}
	id, ok := reportID(w, r, "*Handler.removeTag")
	if !ok {
		return
	}

	// chi matches on the raw path, so an escaped slash stays escaped.
	tag, err := url.PathUnescape(chi.URLParam(r, "tag"))
	if err != nil {
		tag = chi.URLParam(r, "tag")
	}

	report, err := h.services.ReportService.RemoveTag(r.Context(), uid, id, tag)
	if err != nil {
		writeError(w, r, err, "*Handler.removeTag")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r, "*Handler.listTags")
	if !ok {
		return
	}

	tags, err := h.services.ReportService.ListTags(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "*Handler.listTags")
		return
	}
	if tags == nil {
		tags = []string{}
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}
