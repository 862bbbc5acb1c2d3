package todos

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskdock/taskdock/internal/access"
	"github.com/taskdock/taskdock/internal/platform/httpx"
	"github.com/taskdock/taskdock/internal/shared"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// Handler adapts HTTP requests into service calls. It parses and validates
// arguments, resolves nothing itself (identity comes from the request
// context), and maps service errors at the edge via httpx.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers todo routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.search)
	r.Get("/{id}", h.read)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreateInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}

	identity := access.IdentityFromContext(r.Context())
	result, err := h.service.Create(r.Context(), identity, input)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	rep, err := result.ToRepresentation()
	if err != nil {
		h.logger.Error("render todo", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, rep)
}

func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, shared.FieldErrors{"id": "must be an integer"})
		return
	}

	identity := access.IdentityFromContext(r.Context())
	result, err := h.service.Read(r.Context(), identity, id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	rep, err := result.ToRepresentation()
	if err != nil {
		h.logger.Error("render todo", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	identity := access.IdentityFromContext(r.Context())
	result, err := h.service.Search(r.Context(), identity, params)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	rep, err := result.ToRepresentation()
	if err != nil {
		h.logger.Error("render todo list", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}

func parseListParams(r *http.Request) (ListParams, error) {
	params := ListParams{Page: defaultPage, Size: defaultSize}
	fields := make(shared.FieldErrors)
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fields["page"] = "must be an integer >= 1"
		} else {
			params.Page = page
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			fields["size"] = "must be an integer >= 1"
		} else {
			params.Size = size
		}
	}
	if len(fields) > 0 {
		return ListParams{}, fields
	}
	return params, nil
}

// ResolveIdentity is a stand-in for a real login system: a `user` query
// parameter names the caller, anything else is anonymous. An authenticated
// caller provides its user need plus the authenticated role.
func ResolveIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := access.Anonymous()
		if raw := r.URL.Query().Get("user"); raw != "" {
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				httpx.RespondError(w, shared.FieldErrors{"user": "must be a positive integer"})
				return
			}
			identity = access.NewIdentity(userID,
				access.UserNeed(userID),
				access.RoleNeed("authenticated_user"),
			)
		}
		ctx := access.ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
