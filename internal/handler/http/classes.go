package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/culinary-server/internal/utils"
	"github.com/MKhiriev/culinary-server/models"
)

// createClass stores the posted class. Without an instructor email the
// caller is recorded as the instructor.
func (h *Handler) createClass(w http.ResponseWriter, r *http.Request) {
	var class models.Class
	if err := json.NewDecoder(r.Body).Decode(&class); err != nil {
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if class.Instructor.Email == "" {
		class.Instructor.Email = callerEmail(r)
	}

	res, err := h.services.ClassService.CreateClass(r.Context(), class)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) getClasses(w http.ResponseWriter, r *http.Request) {
	filter := models.ClassFilter{Status: models.ClassStatus(r.URL.Query().Get("status"))}

	classes, err := h.services.ClassService.GetClasses(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, classes, http.StatusOK)
}

func (h *Handler) getInstructorClasses(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, paramEmail)
	if !h.sameIdentity(w, r, email) {
		return
	}

	classes, err := h.services.ClassService.GetInstructorClasses(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, classes, http.StatusOK)
}

func (h *Handler) approveClass(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.ClassService.Approve(r.Context(), pathParam(r, paramID))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) denyClass(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.ClassService.Deny(r.Context(), pathParam(r, paramID))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) addClassFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, ErrInvalidJSON)
		return
	}

	res, err := h.services.ClassService.AddFeedback(r.Context(), req.ID, req.Feedback)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}
