package http

import (
	"log/slog"
	"net/http"

	"spend/internal/core"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.categories.ListCategories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if cats == nil {
		cats = []core.Category{}
	}
	writeSuccess(w, http.StatusOK, cats)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	groupBy := core.GroupBy(r.URL.Query().Get("group_by"))
	if !groupBy.IsValid() {
		groupBy = core.GroupTotal
	}
	filter := filterFromQuery(r)

	key := summaryCacheKey(groupBy, filter)
	if cached, found := s.summaryCache.Get(key); found {
		slog.DebugContext(r.Context(), "Summary cache hit", "key", key)
		writeSuccess(w, http.StatusOK, cached)
		return
	}

	summary, err := s.summaries.ReadSummary(r.Context(), groupBy, filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "Read summary failed", "group_by", groupBy, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.summaryCache.Set(key, summary)
	writeSuccess(w, http.StatusOK, summary)
}

func summaryCacheKey(groupBy core.GroupBy, f core.Filter) string {
	v := f.Values()
	v.Set("group_by", string(groupBy))
	return v.Encode()
}
