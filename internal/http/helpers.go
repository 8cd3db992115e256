package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"spend/internal/core"
)

// envelope is the uniform response shape: success on every response, data on
// success, error or errors on failure.
type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeSuccessMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

func writeList(w http.ResponseWriter, records []core.Expense) {
	count := len(records)
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: records, Count: &count})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

func writeValidationErrors(w http.ResponseWriter, errs core.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, envelope{Success: false, Errors: errs})
}

// parseID reads the {id} path value.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

// filterFromQuery builds a Filter from the request's query parameters.
// Absent and empty parameters are both unconstrained.
func filterFromQuery(r *http.Request) core.Filter {
	q := r.URL.Query()
	return core.Filter{
		Category:  q.Get("category"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}.Normalize()
}

// expenseRequest is the create/update body. Amount stays raw so both JSON
// numbers and numeric strings are accepted, and validation can answer with
// field-level messages instead of a decode error.
type expenseRequest struct {
	Amount   json.RawMessage `json:"amount"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
	Category string          `json:"category"`
}

func (req expenseRequest) draft() core.Draft {
	amount := strings.Trim(strings.TrimSpace(string(req.Amount)), `"`)
	if amount == "null" {
		amount = ""
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		// Absent category means the default one, mirroring the data model.
		category = core.DefaultCategoryName
	}
	return core.Draft{
		Amount:   amount,
		Date:     req.Date,
		Note:     req.Note,
		Category: category,
	}
}
