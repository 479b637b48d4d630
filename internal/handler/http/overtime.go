package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/presensi-app/presensi-backend-go/internal/domain/overtime"
	"github.com/presensi-app/presensi-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	GetMyOvertimes(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// Start implements OvertimeHandler.
func (h *overtimeHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req overtime.StartOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.Start(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime started", result)
}

// End implements OvertimeHandler.
func (h *overtimeHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	result, err := h.overtimeService.End(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime ended", result)
}

// GetMyOvertimes implements OvertimeHandler.
func (h *overtimeHandlerImpl) GetMyOvertimes(w http.ResponseWriter, r *http.Request) {
	filter := overtime.MyOvertimeFilter{
		Month: queryInt(r, "month"),
		Year:  queryInt(r, "year"),
	}

	result, err := h.overtimeService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OvertimeHandler.
func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := overtime.ListOvertimeFilter{
		Status: r.URL.Query().Get("status"),
	}

	result, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements OvertimeHandler.
func (h *overtimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true, "Overtime approved")
}

// Reject implements OvertimeHandler.
func (h *overtimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false, "Overtime rejected")
}

func (h *overtimeHandlerImpl) decide(w http.ResponseWriter, r *http.Request, approve bool, message string) {
	req := overtime.DecideOvertimeRequest{
		ID:      chi.URLParam(r, "id"),
		Approve: approve,
	}

	result, err := h.overtimeService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}
