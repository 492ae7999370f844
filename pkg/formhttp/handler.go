package formhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formulate/pkg/binding"
	"github.com/dmitrymomot/formulate/pkg/logger"
	"github.com/dmitrymomot/formulate/pkg/rules"
	"github.com/dmitrymomot/formulate/pkg/validator"
)

const maxBodyBytes = 1 << 20

// FormValidator validates a set of fields against shared form values.
type FormValidator interface {
	ValidateForm(ctx context.Context, fields []validator.FieldSpec, values map[string]any) (validator.FormResult, error)
}

// Handler serves form validation and, when a store is configured, bound
// field values over HTTP.
type Handler struct {
	validator FormValidator
	store     binding.Store
	ns        binding.Namespacer
	logger    *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithStore enables the /forms routes backed by store under the ns namespace.
func WithStore(store binding.Store, ns binding.Namespacer) Option {
	return func(h *Handler) {
		h.store = store
		h.ns = ns
	}
}

// New creates a Handler around v.
func New(v FormValidator, opts ...Option) *Handler {
	h := &Handler{validator: v, logger: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the router:
//
//	POST /validate
//	GET  /forms/{form}
//	GET  /forms/{form}/valid
//	PUT  /forms/{form}/fields/{field}
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/validate", h.validate)
	r.Route("/forms/{form}", func(r chi.Router) {
		r.Get("/", h.formValues)
		r.Get("/valid", h.formValid)
		r.Put("/fields/{field}", h.setField)
	})
	return r
}

// RequestIDExtractor adds the chi request id to log records.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

type validateRequest struct {
	Form   string            `json:"form,omitempty"`
	Rules  map[string]string `json:"rules"`
	Labels map[string]string `json:"labels,omitempty"`
	Values map[string]any    `json:"values"`
}

type validateResponse struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	names := slices.Sorted(maps.Keys(req.Rules))
	specs := make([]validator.FieldSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, validator.FieldSpec{
			Field: validator.Field{Name: name, Label: req.Labels[name]},
			Rules: req.Rules[name],
		})
	}

	res, err := h.validator.ValidateForm(r.Context(), specs, req.Values)
	if err != nil {
		var unknown *rules.UnknownRuleError
		switch {
		case errors.As(err, &unknown):
			err = fmt.Errorf("%w: %q", ErrUnknownRule, unknown.Rule)
		case errors.Is(err, validator.ErrRuleFailed):
			// An async rule's backing service failed, not the request.
			err = fmt.Errorf("%w: %w", ErrRuleFailed, err)
		}
		h.writeError(w, r, err)
		return
	}

	if req.Form != "" && h.store != nil {
		if err := h.recordErrors(r.Context(), req.Form, names, res); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	body := validateResponse{Valid: res.Valid(), Errors: make(map[string][]string)}
	for name, msgs := range res {
		if !msgs.Valid() {
			body.Errors[name] = msgs
		}
	}
	writeJSON(w, http.StatusOK, body)
}

// recordErrors stores the messages of every validated field, empty for valid ones.
func (h *Handler) recordErrors(ctx context.Context, form string, names []string, res validator.FormResult) error {
	mutation := binding.Prefix(h.ns) + binding.MutationSetFieldErrors
	for _, name := range names {
		msgs := []string(res[name])
		if msgs == nil {
			msgs = []string{}
		}
		if err := h.store.Commit(ctx, mutation, binding.FieldValue{Form: form, Field: name, Value: msgs}); err != nil {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}
	return nil
}

func (h *Handler) formValues(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrNotFound, ErrNoStore))
		return
	}

	values, err := h.store.Get(r.Context(), binding.Prefix(h.ns)+binding.GetterFormValues)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrStoreUnavailable, err))
		return
	}
	form := values[chi.URLParam(r, "form")]
	if form == nil {
		form = map[string]any{}
	}
	writeJSON(w, http.StatusOK, form)
}

func (h *Handler) formValid(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrNotFound, ErrNoStore))
		return
	}

	valid, err := binding.FormValid(r.Context(), h.ns, h.store, chi.URLParam(r, "form"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrStoreUnavailable, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

type setFieldRequest struct {
	Value any `json:"value"`
}

func (h *Handler) setField(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrNotFound, ErrNoStore))
		return
	}

	var req setFieldRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	models, err := binding.MapModels(h.ns, h.store, map[string]string{
		"field": chi.URLParam(r, "form") + "/" + chi.URLParam(r, "field"),
	})
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidField, err))
		return
	}
	if err := models["field"].Set(r.Context(), req.Value); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrStoreUnavailable, err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}
