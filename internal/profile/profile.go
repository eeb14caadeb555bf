package profile

import (
	"errors"
	"net/http"
	"strconv"

	"Railcalc/internal/auth"
	"Railcalc/internal/httpx"
	"Railcalc/internal/repo"

	"github.com/gorilla/mux"
)

type ProfileHandler struct {
	Repo repo.Repository
}

// GetProfile returns the caller's account, or the account named by the {id}
// route variable when present.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		httpx.WriteError(w, httpx.NewUnauthorizedError("login required"))
		return
	}
	userID := claims.UserID

	if idStr, ok := mux.Vars(r)["id"]; ok && idStr != "" {
		targetID, err := strconv.Atoi(idStr)
		if err != nil || targetID <= 0 {
			httpx.WriteError(w, httpx.NewBadRequestError("invalid id", err))
			return
		}
		userID = targetID
	}

	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		httpx.WriteError(w, httpx.NewNotFoundError("profile not found"))
		return
	}
	if err != nil {
		httpx.WriteError(w, httpx.NewInternalError("database error", nil))
		return
	}
	httpx.Write(w, r, http.StatusOK, prof)
}
