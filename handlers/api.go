package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viadorassan/viador/backend/go-services/internal/database"
	"github.com/viadorassan/viador/backend/go-services/internal/models"
	"github.com/viadorassan/viador/backend/go-services/pkg/logger"
	"github.com/viadorassan/viador/backend/go-services/pkg/metrics"
)

// ErrNotFound marks a lookup that matched no document.
var ErrNotFound = errors.New("not found")

// notFound carries the client-facing message while matching ErrNotFound.
type notFound string

func (e notFound) Error() string        { return string(e) }
func (e notFound) Is(target error) bool { return target == ErrNotFound }

const rootMessage = "Viador Assan - Conhecimento ao seu Alcance API"

// maxBodyBytes bounds a contact message request body.
const maxBodyBytes = 64 << 10

// APIHandler serves the public site API. It holds no state besides the store.
type APIHandler struct {
	store *database.Store
	now   func() time.Time
}

func NewAPIHandler(store *database.Store) *APIHandler {
	return &APIHandler{store: store, now: time.Now}
}

// WithClock overrides the time source used for created_at.
func (h *APIHandler) WithClock(now func() time.Time) *APIHandler {
	h.now = now
	return h
}

// Register mounts the API routes on the group (normally /api).
func (h *APIHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.GET("/contact", h.GetContactInfo)
	rg.GET("/services", h.ListServices)
	rg.GET("/courses", h.ListCourses)
	rg.GET("/courses/:subject", h.GetCourseBySubject)
	rg.POST("/contact/message", h.CreateContactMessage)
	rg.GET("/contact/messages", h.ListContactMessages)
}

// Root identifies the API.
func (h *APIHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// GetContactInfo returns the business contact card.
func (h *APIHandler) GetContactInfo(c *gin.Context) {
	info, err := h.store.ContactInfo.FindOne(c.Request.Context(), database.Eq("name", models.BusinessName))
	if err != nil {
		writeError(c, err)
		return
	}
	if info == nil {
		writeError(c, notFound("Contact info not found"))
		return
	}
	c.JSON(http.StatusOK, info)
}

// ListServices returns up to 100 services.
func (h *APIHandler) ListServices(c *gin.Context) {
	list, err := h.store.Services.Find(c.Request.Context(), database.FindOptions{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListCourses returns up to 100 IT courses.
func (h *APIHandler) ListCourses(c *gin.Context) {
	list, err := h.store.Courses.Find(c.Request.Context(), database.FindOptions{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetCourseBySubject returns the course for a subject. Unknown subjects are
// rejected before the store is queried.
func (h *APIHandler) GetCourseBySubject(c *gin.Context) {
	subject, err := models.ParseSubject(c.Param("subject"))
	if err != nil {
		writeError(c, err)
		return
	}
	course, err := h.store.Courses.FindOne(c.Request.Context(), database.Eq("subject", subject))
	if err != nil {
		writeError(c, err)
		return
	}
	if course == nil {
		writeError(c, notFound("Course not found"))
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateContactMessage stores a visitor message and echoes it back with its
// generated id and created_at.
func (h *APIHandler) CreateContactMessage(c *gin.Context) {
	var in models.ContactMessageInput
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := decodeStrict(body, &in); err != nil {
		writeError(c, err)
		return
	}
	msg, err := models.NewContactMessage(in, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.store.Messages.InsertOne(c.Request.Context(), &msg); err != nil {
		writeError(c, err)
		return
	}
	metrics.ContactMessages.Inc()
	logger.Infof("contact message %s stored (interest=%q)", msg.ID, msg.ServiceInterest)
	c.JSON(http.StatusOK, msg)
}

// ListContactMessages returns the newest 100 messages, newest first.
func (h *APIHandler) ListContactMessages(c *gin.Context) {
	list, err := h.store.Messages.Find(c.Request.Context(), database.FindOptions{SortDesc: "created_at"})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// decodeStrict reads exactly one JSON object with no unknown fields.
func decodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", models.ErrInvalid)
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: request body exceeds %d bytes", models.ErrInvalid, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %v", models.ErrInvalid, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON body", models.ErrInvalid)
	}
	return nil
}

// writeError maps the error taxonomy onto status codes. Unknown errors are
// logged and hidden behind a generic 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	default:
		logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
	}
}
