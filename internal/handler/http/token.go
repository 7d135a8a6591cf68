package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/culinary-server/internal/utils"
	"github.com/MKhiriev/culinary-server/models"
)

// tokenRequest is the identity a client asks a token for. Any other fields
// in the body are ignored.
type tokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// issueToken signs a one-hour token for the posted identity. The identity
// is not checked against the user store.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, ErrInvalidJSON)
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), models.Claims{Email: req.Email, Name: req.Name})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}
