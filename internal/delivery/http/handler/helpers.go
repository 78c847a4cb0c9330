package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/http/middleware"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// decodeJSON writes a 400 and returns false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// currentUser writes a 401 when the auth middleware did not run.
func currentUser(w http.ResponseWriter, r *http.Request) (*entity.User, bool) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return nil, false
	}
	return user, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+label+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

const (
	maxPage  = 10000
	maxLimit = 100
)

// pageParams reads ?page= and ?limit=. Missing or malformed values fall back
// to page 1 and no limit. Both are capped so the offset cannot overflow.
func pageParams(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		limit = 0
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
