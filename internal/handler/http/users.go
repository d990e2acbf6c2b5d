package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alternajob/user-service/internal/logger"
	"github.com/alternajob/user-service/internal/utils"
	"github.com/alternajob/user-service/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Int64("id", id).Msg("error getting user")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Str("username", req.Username).Msg("error creating user")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Int64("id", id).Msg("error updating user")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Int64("id", id).Msg("error deleting user")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userIDFromRequest parses the {id} route parameter. On a malformed id it
// writes a 400 response itself and reports ok=false.
func (h *Handler) userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Err(err).Str("id", rawID).Msg("invalid user id in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid user id"}, http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

// writeError maps a service/store error to its HTTP status and writes the
// JSON error body.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
