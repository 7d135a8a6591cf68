package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/culinary-server/internal/utils"
	"github.com/MKhiriev/culinary-server/models"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	role := models.Role(r.URL.Query().Get("role"))

	users, err := h.services.UserService.GetUsers(r.Context(), role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

// saveUser upserts the profile of the user named in the path. It runs
// without authentication: it is the sign-in hook of the client.
func (h *Handler) saveUser(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, paramEmail)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, r, ErrInvalidJSON)
		return
	}

	res, err := h.services.UserService.SaveUser(r.Context(), email, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) isAdmin(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, paramSubject)
	if !h.sameIdentity(w, r, email) {
		return
	}

	admin, err := h.services.UserService.IsAdmin(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AdminCheck{Admin: admin}, http.StatusOK)
}

func (h *Handler) isInstructor(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, paramSubject)
	if !h.sameIdentity(w, r, email) {
		return
	}

	instructor, err := h.services.UserService.IsInstructor(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.InstructorCheck{Instructor: instructor}, http.StatusOK)
}

func (h *Handler) makeAdmin(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.UserService.MakeAdmin(r.Context(), pathParam(r, paramSubject))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) makeInstructor(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.UserService.MakeInstructor(r.Context(), pathParam(r, paramSubject))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}
