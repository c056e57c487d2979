package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/service/intercom"
)

// multipartOverhead is headroom above the photo limit for the form fields
// and part headers of a ring upload.
const multipartOverhead = 64 << 10

type intercomService interface {
	Ring(ctx context.Context, input intercom.RingInput) (*intercom.RingResult, error)
	Open(ctx context.Context, input intercom.OpenInput) (*intercom.OpenResult, error)
	Reject(ctx context.Context, eventID uuid.UUID) (*domain.AccessEvent, error)
	Respond(ctx context.Context, input intercom.RespondInput) (*domain.AccessEvent, error)
	Status(ctx context.Context, eventID uuid.UUID) (*domain.AccessEvent, error)
	History(ctx context.Context, input intercom.HistoryInput) ([]domain.AccessEvent, error)
}

// IntercomHandler serves the ring, decision and query endpoints.
type IntercomHandler struct {
	svc           intercomService
	maxPhotoBytes int64
	log           *slog.Logger
}

// NewIntercomHandler creates an IntercomHandler.
func NewIntercomHandler(svc intercomService, maxPhotoBytes int64, logger *slog.Logger) *IntercomHandler {
	return &IntercomHandler{svc: svc, maxPhotoBytes: maxPhotoBytes, log: logger.With("handler", "intercom")}
}

type ringResponse struct {
	Success    bool      `json:"success"`
	EventID    uuid.UUID `json:"eventId"`
	Recipients int       `json:"recipients"`
	Delivered  int       `json:"delivered"`
	Message    string    `json:"message"`
}

type accessEventResponse struct {
	ID              uuid.UUID  `json:"id"`
	UnitID          uuid.UUID  `json:"unitId"`
	Status          string     `json:"status"`
	PhotoURL        *string    `json:"photoUrl,omitempty"`
	VisitorMessage  *string    `json:"visitorMessage,omitempty"`
	ResponseMessage *string    `json:"responseMessage,omitempty"`
	OpenedBy        *uuid.UUID `json:"openedBy,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// visitorStatusResponse is what the unauthenticated visitor page polls.
// It leaves out who opened and the visitor's own inputs.
type visitorStatusResponse struct {
	ID              uuid.UUID `json:"id"`
	UnitID          uuid.UUID `json:"unitId"`
	Status          string    `json:"status"`
	ResponseMessage *string   `json:"responseMessage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type openRequest struct {
	Target string `json:"target"`
}

type openResponse struct {
	Event         accessEventResponse `json:"event"`
	CommandSent   bool                `json:"commandSent"`
	AlreadyOpened bool                `json:"alreadyOpened"`
}

type respondRequest struct {
	Message string `json:"message"`
}

type historyResponse struct {
	Items []accessEventResponse `json:"items"`
}

type ringJSONRequest struct {
	Message *string `json:"message"`
}

// Ring handles POST /v1/units/{unitId}/ring. The visitor page sends
// multipart/form-data with an optional "message" field and "photo" file;
// a JSON body with only a message is accepted as well.
func (h *IntercomHandler) Ring(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathUUID(w, r, "unitId")
	if !ok {
		return
	}

	input := intercom.RingInput{UnitID: unitID}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoBytes+multipartOverhead)
		if err := r.ParseMultipartForm(h.maxPhotoBytes); err != nil {
			h.badUpload(w, err)
			return
		}
		if msg := r.FormValue("message"); msg != "" {
			input.Message = &msg
		}
		photo, err := h.readPhoto(r)
		if err != nil {
			h.badUpload(w, err)
			return
		}
		input.Photo = photo
	case "application/json":
		var req ringJSONRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		input.Message = req.Message
	case "":
	default:
		writeError(w, http.StatusUnsupportedMediaType, "unsupported content type")
		return
	}

	result, err := h.svc.Ring(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ringResponse{
		Success:    true,
		EventID:    result.EventID,
		Recipients: result.Recipients,
		Delivered:  result.Delivered,
		Message:    result.Message,
	})
}

var errPhotoTooLarge = errors.New("photo too large")

func (h *IntercomHandler) readPhoto(r *http.Request) ([]byte, error) {
	f, _, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxPhotoBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxPhotoBytes {
		return nil, errPhotoTooLarge
	}
	return data, nil
}

func (h *IntercomHandler) badUpload(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || errors.Is(err, errPhotoTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "photo too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid upload")
}

// Status handles GET /v1/access-events/{id}.
func (h *IntercomHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	ev, err := h.svc.Status(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, visitorStatusResponse{
		ID:              ev.ID,
		UnitID:          ev.UnitID,
		Status:          ev.Status.String(),
		ResponseMessage: ev.ResponseMessage,
		CreatedAt:       ev.CreatedAt,
	})
}

// Open handles POST /v1/access-events/{id}/open. The body is optional.
func (h *IntercomHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req openRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Open(r.Context(), intercom.OpenInput{
		EventID: id,
		Target:  domain.DoorTarget(req.Target),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, openResponse{
		Event:         toAccessEventResponse(result.Event),
		CommandSent:   result.CommandSent,
		AlreadyOpened: result.AlreadyOpened,
	})
}

// Reject handles POST /v1/access-events/{id}/reject.
func (h *IntercomHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	ev, err := h.svc.Reject(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccessEventResponse(*ev))
}

// Respond handles POST /v1/access-events/{id}/respond.
func (h *IntercomHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.svc.Respond(r.Context(), intercom.RespondInput{EventID: id, Message: req.Message})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccessEventResponse(*ev))
}

// History handles GET /v1/units/{unitId}/access-events?limit=.
func (h *IntercomHandler) History(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathUUID(w, r, "unitId")
	if !ok {
		return
	}

	input := intercom.HistoryInput{UnitID: unitID}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "validation failed",
				Fields: []fieldError{{Field: "limit", Message: "must be an integer"}},
			})
			return
		}
		input.Limit = limit
	}

	events, err := h.svc.History(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := historyResponse{Items: make([]accessEventResponse, 0, len(events))}
	for _, ev := range events {
		resp.Items = append(resp.Items, toAccessEventResponse(ev))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toAccessEventResponse(ev domain.AccessEvent) accessEventResponse {
	return accessEventResponse{
		ID:              ev.ID,
		UnitID:          ev.UnitID,
		Status:          ev.Status.String(),
		PhotoURL:        ev.PhotoURL,
		VisitorMessage:  ev.VisitorMessage,
		ResponseMessage: ev.ResponseMessage,
		OpenedBy:        ev.OpenedBy,
		CreatedAt:       ev.CreatedAt,
	}
}

// decodeOptional decodes a JSON body if one was sent.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
