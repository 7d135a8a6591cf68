package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/culinary-server/internal/utils"
	"github.com/MKhiriev/culinary-server/models"
)

// addCartItem puts a class into the caller's cart. An item addressed to
// another user's cart is refused with 403.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if item.Email == "" {
		item.Email = callerEmail(r)
	}
	if !h.sameIdentity(w, r, item.Email) {
		return
	}

	res, err := h.services.CartService.AddItem(r.Context(), item)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}

// getCartItems lists the cart of ?email=. Without the parameter the list is
// empty and the store is not queried.
func (h *Handler) getCartItems(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		_, _ = utils.WriteJSON(w, []models.CartItem{}, http.StatusOK)
		return
	}
	if !h.sameIdentity(w, r, email) {
		return
	}

	items, err := h.services.CartService.GetItems(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

// deleteCartItem removes one of the caller's items. Someone else's id
// matches nothing and reports deletedCount 0.
func (h *Handler) deleteCartItem(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.CartService.RemoveItem(r.Context(), pathParam(r, paramID), callerEmail(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}
