package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/export"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/service"
)

// API exposes the service operations over HTTP. Handlers carry no business
// rules: they decode input, call exactly one service operation and render
// the result.
type API struct {
	svc *service.Service
}

// NewAPI creates the HTTP surface over the service.
func NewAPI(svc *service.Service) *API {
	return &API{svc: svc}
}

// Register installs all routes on the mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/equipment", a.equipment)
	mux.HandleFunc("/api/equipment/", a.equipmentByID)
	mux.HandleFunc("/api/technicians", a.technicians)
	mux.HandleFunc("/api/technicians/", a.technicianByID)
	mux.HandleFunc("/api/orders", a.orders)
	mux.HandleFunc("/api/orders/", a.orderByID)
	mux.HandleFunc("/api/plans", a.plans)
	mux.HandleFunc("/api/plans/", a.planByID)
	mux.HandleFunc("/api/history", a.history)
	mux.HandleFunc("/api/history/export", a.historyExport)
	mux.HandleFunc("/api/stats", a.stats)
}

// writeError maps the service error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrPrecondition):
		status = http.StatusPreconditionFailed
	case errors.Is(err, service.ErrPersistence):
		// the mutation applied; the caller must be told durable state lags
		status = http.StatusInternalServerError
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("encode response")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

// pathID extracts the trailing numeric id from a path like
// /api/equipment/3, returning the id and any remaining action segment.
func pathID(path, prefix string) (int, string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.SplitN(strings.Trim(rest, "/"), "/", 2)
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", false
	}
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}
	return id, action, true
}

func (a *API) equipment(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, a.svc.FindEquipment(r.URL.Query().Get("q")))
	case http.MethodPost:
		var in service.EquipmentInput
		if !decode(w, r, &in) {
			return
		}
		eq, err := a.svc.CreateEquipment(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, eq)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) equipmentByID(w http.ResponseWriter, r *http.Request) {
	id, _, ok := pathID(r.URL.Path, "/api/equipment/")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var upd service.EquipmentUpdate
		if !decode(w, r, &upd) {
			return
		}
		eq, err := a.svc.UpdateEquipment(r.Context(), id, upd)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, eq)
	case http.MethodDelete:
		if err := a.svc.DeleteEquipment(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) technicians(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, a.svc.ListTechnicians())
	case http.MethodPost:
		var in service.TechnicianInput
		if !decode(w, r, &in) {
			return
		}
		t, err := a.svc.CreateTechnician(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) technicianByID(w http.ResponseWriter, r *http.Request) {
	id, _, ok := pathID(r.URL.Path, "/api/technicians/")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := a.svc.DeleteTechnician(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) orders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if status := r.URL.Query().Get("status"); status != "" {
			out, err := a.svc.WorkOrdersByStatus(models.WorkOrderStatus(status))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, out)
			return
		}
		writeJSON(w, http.StatusOK, a.svc.ListWorkOrders())
	case http.MethodPost:
		var in service.WorkOrderInput
		if !decode(w, r, &in) {
			return
		}
		o, err := a.svc.CreateWorkOrder(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, o)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) orderByID(w http.ResponseWriter, r *http.Request) {
	id, action, ok := pathID(r.URL.Path, "/api/orders/")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	switch {
	case action == "" && r.Method == http.MethodDelete:
		if err := a.svc.DeleteWorkOrder(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case action == "transition" && r.Method == http.MethodPost:
		var body struct {
			Status models.WorkOrderStatus `json:"status"`
		}
		if !decode(w, r, &body) {
			return
		}
		o, err := a.svc.Transition(r.Context(), id, body.Status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	case action == "assign" && r.Method == http.MethodPost:
		var body struct {
			TechnicianID int `json:"technician_id"`
		}
		if !decode(w, r, &body) {
			return
		}
		o, err := a.svc.AssignTechnician(r.Context(), id, body.TechnicianID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	case action == "complete" && r.Method == http.MethodPost:
		var body struct {
			Notes string `json:"notes"`
		}
		if !decode(w, r, &body) {
			return
		}
		o, err := a.svc.CompleteWorkOrder(r.Context(), id, body.Notes)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) plans(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		if q.Get("month") != "" || q.Get("year") != "" {
			month, _ := strconv.Atoi(q.Get("month"))
			year, _ := strconv.Atoi(q.Get("year"))
			writeJSON(w, http.StatusOK, a.svc.PlansByPeriod(month, year))
			return
		}
		writeJSON(w, http.StatusOK, a.svc.ListPlans())
	case http.MethodPost:
		var in service.PlanInput
		if !decode(w, r, &in) {
			return
		}
		p, err := a.svc.CreatePlan(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) planByID(w http.ResponseWriter, r *http.Request) {
	id, _, ok := pathID(r.URL.Path, "/api/plans/")
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := a.svc.DeletePlan(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) history(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.svc.History())
}

func (a *API) historyExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="maintenance_history.csv"`)
	if err := export.WriteHistoryCSV(w, a.svc.History()); err != nil {
		log.WithError(err).Error("export history")
	}
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.svc.Stats())
}
