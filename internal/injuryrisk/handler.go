package injuryrisk

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/injuryrisk/risk"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=injuryrisk_test

type service interface {
	GetAssessment(ctx context.Context, userID string) (*risk.Assessment, error)
	GetWarnings(ctx context.Context, userID string) (*risk.Warnings, error)
	GetAIAnalysis(ctx context.Context, userID string) (string, error)
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	usersRouter := router.PathPrefix("/injury-risk/users/{userId}").Subrouter()
	usersRouter.HandleFunc("/assessment", h.HandleGetAssessment).Methods("GET").Name("injury-risk-assessment")
	usersRouter.HandleFunc("/warnings", h.HandleGetWarnings).Methods("GET").Name("injury-risk-warnings")
	usersRouter.HandleFunc("/analysis", h.HandleGetAnalysis).Methods("GET").Name("injury-risk-analysis")
}

func (h *Handler) HandleGetAssessment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuryrisk.assessment")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	assessment, err := h.service.GetAssessment(ctx, userID)
	if err != nil {
		writeServiceError(w, "get assessment", userID, err)
		return
	}

	pkg.WriteJSON(w, assessment, http.StatusOK)
}

func (h *Handler) HandleGetWarnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuryrisk.warnings")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	warnings, err := h.service.GetWarnings(ctx, userID)
	if err != nil {
		writeServiceError(w, "get warnings", userID, err)
		return
	}

	pkg.WriteJSON(w, warnings, http.StatusOK)
}

func (h *Handler) HandleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuryrisk.analysis")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	analysis, err := h.service.GetAIAnalysis(ctx, userID)
	if err != nil {
		writeServiceError(w, "get analysis", userID, err)
		return
	}

	pkg.WriteJSON(w, AnalysisResponse{Analysis: analysis}, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, op, userID string, err error) {
	if errors.Is(err, ErrInvalidUserID) {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	log.Errorf("injury risk, %s for user %s: %s", op, userID, err)
	http.Error(w, "failed to compute injury risk", http.StatusInternalServerError)
}
