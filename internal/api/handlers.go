// Package api exposes HTTP handlers for the activity signup service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", rootRedirect)
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// rootRedirect points browsers at the static landing page. The "/" pattern
// also catches unmatched paths, which get a JSON 404.
func rootRedirect(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make(map[string]ActivityView, len(activities))
	for name, act := range activities {
		resp[name] = toActivityView(act)
	}
	writeJSON(w, http.StatusOK, resp)
}

// activityAction handles /activities/{name}/signup. Activity names may contain
// spaces, so the path segment is unescaped before lookup.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.EscapedPath(), "/activities/")
	name, action, ok := strings.Cut(rest, "/")
	if !ok || action != "signup" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	activityName, err := url.PathUnescape(name)
	if err != nil || activityName == "" {
		writeError(w, http.StatusBadRequest, "Invalid activity name")
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	h.signup(w, r, activityName)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, activityName string) {
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, "Missing email parameter")
		return
	}

	message, err := h.service.Signup(r.Context(), activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordSignupAttempt(observability.OutcomeNotFound)
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			observability.RecordSignupAttempt(observability.OutcomeAlreadyRegistered)
			writeError(w, http.StatusBadRequest, "Student is already signed up")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordSignupAttempt(observability.OutcomeSuccess)
	writeJSON(w, http.StatusOK, SignupResponse{Message: message})
}

// ActivityView exposes one activity's details in the roster listing.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SignupResponse confirms a successful registration.
type SignupResponse struct {
	Message string `json:"message"`
}

func toActivityView(act domain.Activity) ActivityView {
	return ActivityView{
		Description:     act.Description,
		Schedule:        act.Schedule,
		MaxParticipants: act.MaxParticipants,
		Participants:    act.Participants,
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
