package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/service"
)

const (
	msgInvalidRent = "Invalid input for shelf or customer."
	msgInvalidSale = "Invalid input for shelf or amount."
	msgInvalidBody = "Invalid request body."
)

// InventoryHandler exposes the inventory service as JSON over HTTP
type InventoryHandler struct {
	inventory service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventory service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type addCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Numeric fields arrive as typed by the operator; both JSON numbers and strings are accepted.
type rentShelfRequest struct {
	CustomerID json.RawMessage `json:"customerId"`
}

type registerSaleRequest struct {
	ShelfID json.RawMessage `json:"shelfId"`
	Amount  json.RawMessage `json:"amount"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (h *InventoryHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.inventory.ListCustomers(r.Context()))
}

func (h *InventoryHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req addCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	writeResult(w, h.inventory.AddCustomer(r.Context(), req.Name, req.Email, req.Phone))
}

func (h *InventoryHandler) ListShelves(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.inventory.ListShelves(r.Context()))
}

func (h *InventoryHandler) RentShelf(w http.ResponseWriter, r *http.Request) {
	shelfID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidRent)
		return
	}
	var req rentShelfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidRent)
		return
	}
	customerID, err := parseID(rawText(req.CustomerID))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidRent)
		return
	}
	writeResult(w, h.inventory.RentShelf(r.Context(), shelfID, customerID))
}

func (h *InventoryHandler) RegisterSale(w http.ResponseWriter, r *http.Request) {
	var req registerSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidSale)
		return
	}
	shelfID, err := parseID(rawText(req.ShelfID))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidSale)
		return
	}
	amount, err := strconv.ParseFloat(rawText(req.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		writeError(w, http.StatusBadRequest, msgInvalidSale)
		return
	}
	writeResult(w, h.inventory.RegisterSale(r.Context(), shelfID, amount))
}

func (h *InventoryHandler) Statements(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.inventory.Statements(r.Context()))
}

// LatestStatus returns the status line of the most recent operation
func (h *InventoryHandler) LatestStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: h.inventory.LatestStatus()})
}

func (h *InventoryHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.Ping(r.Context()); err != nil {
		logger.WarnContext(r.Context(), "Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "Offline – " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "OK"})
}

// RegisterInventoryRoutes registers the inventory HTTP endpoints
func RegisterInventoryRoutes(router *mux.Router, inventory service.InventoryService) {
	handler := NewInventoryHandler(inventory)
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/customers", handler.ListCustomers).Methods("GET")
	api.HandleFunc("/customers", handler.AddCustomer).Methods("POST")
	api.HandleFunc("/shelves", handler.ListShelves).Methods("GET")
	api.HandleFunc("/shelves/{id}/rent", handler.RentShelf).Methods("POST")
	api.HandleFunc("/sales", handler.RegisterSale).Methods("POST")
	api.HandleFunc("/statements", handler.Statements).Methods("GET")
	api.HandleFunc("/status", handler.LatestStatus).Methods("GET")
	router.HandleFunc("/healthz", handler.Health).Methods("GET")
}

// Reads always answer 200, with placeholder data when offline. Failed writes
// map to 503 for connectivity and 422 for statements the store rejected.
func writeResult[T any](w http.ResponseWriter, res service.Result[T]) {
	code := http.StatusOK
	if !res.OK() && !res.Fallback {
		switch res.Outcome {
		case service.OutcomeExecution:
			code = http.StatusUnprocessableEntity
		default:
			code = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, code, res)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, statusResponse{Status: msg})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// parseID accepts ids that fit the store's 32-bit INT columns
func parseID(text string) (int, error) {
	id, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// rawText unwraps a JSON string or returns the bare number literal
func rawText(raw json.RawMessage) string {
	text := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(text); err == nil {
		return strings.TrimSpace(unquoted)
	}
	return text
}
