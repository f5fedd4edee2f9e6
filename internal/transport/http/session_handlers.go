package httptransport

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobcard/internal/checklist"
	"jobcard/internal/httpx"
	"jobcard/internal/service"
)

type SessionServices interface {
	StartSession(ctx context.Context, inspectorID int64) (checklist.Session, error)
	Session(id uuid.UUID) (checklist.Session, error)
	DiscardSession(id uuid.UUID) error
	SelectType(ctx context.Context, id uuid.UUID, typ string) (checklist.Session, error)
	SetAnswer(id uuid.UUID, index int, value string) (checklist.Session, error)
	SetImage(id uuid.UUID, index int, image string) (checklist.Session, error)
	ClearImage(id uuid.UUID, index int) (checklist.Session, error)
	SetCommonFields(id uuid.UUID, fields checklist.CommonFields) (checklist.Session, error)
	SetSignatures(id uuid.UUID, inspector, customer string) (checklist.Session, error)
	Missing(id uuid.UUID) ([]string, error)
	Submit(ctx context.Context, id uuid.UUID) (service.Submission, error)
}

type SessionHandlers struct {
	service SessionServices
	logger  *zap.Logger
}

func NewSessionHandlers(service SessionServices, logger *zap.Logger) *SessionHandlers {
	return &SessionHandlers{
		service: service,
		logger:  logger,
	}
}

func (h *SessionHandlers) Start(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.ReadBody[StartSessionRequest](w, r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.InspectorID <= 0 {
		httpx.Error(w, http.StatusBadRequest, "inspector_id is required")
		return
	}

	sess, err := h.service.StartSession(r.Context(), req.InspectorID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newSessionView(sess))
}

func (h *SessionHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	sess, err := h.service.Session(id)
	h.respond(w, r, sess, err)
}

func (h *SessionHandlers) Discard(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	if err := h.service.DiscardSession(id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandlers) SelectType(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	req, err := httpx.ReadBody[SelectTypeRequest](w, r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sess, err := h.service.SelectType(r.Context(), id, req.Type)
	h.respond(w, r, sess, err)
}

func (h *SessionHandlers) SetAnswer(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	index, err := httpx.PathInt(r, "index")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	req, err := httpx.ReadBody[AnswerRequest](w, r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sess, err := h.service.SetAnswer(id, index, req.Value)
	h.respond(w, r, sess, err)
}

func (h *SessionHandlers) SetImage(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	index, err := httpx.PathInt(r, "index")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	req, err := httpx.ReadBody[ImageRequest](w, r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sess, err := h.service.SetImage(id, index, req.Image)
	h.respond(w, r, sess, err)
}

func (h *SessionHandlers) ClearImage(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	index, err := httpx.PathInt(r, "index")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sess, err := h.service.ClearImage(id, index)
	h.respond(w, r, sess, err)
}

func (h *SessionHandlers) SetCommonFields(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	fields, err := httpx.ReadBody[checklist.CommonFields](w, r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sess, err := h.service.SetCommonFields(id, fields)
	h.respond(w, r, sess, err)
}

func (h *SessionHandlers) SetSignatures(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	req, err := httpx.ReadBody[SignaturesRequest](w, r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sess, err := h.service.SetSignatures(id, req.InspectorSignature, req.CustomerSignature)
	h.respond(w, r, sess, err)
}

func (h *SessionHandlers) Missing(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	missing, err := h.service.Missing(id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MissingResponse{Missing: missing, Valid: len(missing) == 0})
}

func (h *SessionHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.SessionIDFromContext(r.Context())
	sub, err := h.service.Submit(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sub)
}

func (h *SessionHandlers) respond(w http.ResponseWriter, r *http.Request, sess checklist.Session, err error) {
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newSessionView(sess))
}
