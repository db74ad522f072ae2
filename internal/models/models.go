package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalid marks a record or request that failed shape or enum validation.
var ErrInvalid = errors.New("invalid input")

// BusinessName is the natural key of the one ContactInfo the site shows.
const BusinessName = "Viador Assan"

// ContactInfo is the business contact card shown on the site. Seeded once,
// keyed by Name.
type ContactInfo struct {
	ID          string   `json:"id" bson:"id" validate:"required"`
	Name        string   `json:"name" bson:"name" validate:"required"`
	Phone       string   `json:"phone" bson:"phone" validate:"required"`
	Email       string   `json:"email" bson:"email" validate:"required"`
	Locations   []string `json:"locations" bson:"locations" validate:"required"`
	Slogan      string   `json:"slogan" bson:"slogan" validate:"required"`
	Description string   `json:"description" bson:"description" validate:"required"`
}

// Service is one offering (tutoring or computer training). Keyed by Title.
type Service struct {
	ID          string      `json:"id" bson:"id" validate:"required"`
	Type        ServiceType `json:"type" bson:"type" validate:"enum"`
	Title       string      `json:"title" bson:"title" validate:"required"`
	Description string      `json:"description" bson:"description" validate:"required"`
	Features    []string    `json:"features" bson:"features" validate:"required"`
	Icon        string      `json:"icon" bson:"icon" validate:"required"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at" validate:"required"`
}

// ITCourse is a course in the IT catalog. Keyed by Title, Subject is unique.
type ITCourse struct {
	ID          string    `json:"id" bson:"id" validate:"required"`
	Subject     Subject   `json:"subject" bson:"subject" validate:"enum"`
	Title       string    `json:"title" bson:"title" validate:"required"`
	Description string    `json:"description" bson:"description" validate:"required"`
	Level       Level     `json:"level" bson:"level" validate:"enum"`
	Topics      []string  `json:"topics" bson:"topics" validate:"required"`
	Icon        string    `json:"icon" bson:"icon" validate:"required"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" validate:"required"`
}

// ContactMessage is a visitor submission. Never updated or deleted.
type ContactMessage struct {
	ID              string    `json:"id" bson:"id" validate:"required"`
	Name            string    `json:"name" bson:"name" validate:"required"`
	Phone           string    `json:"phone" bson:"phone" validate:"required"`
	Email           *string   `json:"email" bson:"email"`
	ServiceInterest string    `json:"service_interest" bson:"service_interest" validate:"required"`
	Message         string    `json:"message" bson:"message" validate:"required"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at" validate:"required"`
}

// ContactMessageInput is the body accepted by the message endpoint.
type ContactMessageInput struct {
	Name            string  `json:"name" validate:"required"`
	Phone           string  `json:"phone" validate:"required"`
	Email           *string `json:"email"`
	ServiceInterest string  `json:"service_interest" validate:"required"`
	Message         string  `json:"message" validate:"required"`
}

func newID() string { return uuid.NewString() }

// Timestamp normalizes t to the representation every created_at uses:
// UTC, millisecond precision (what Mongo keeps).
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// NewContactInfo stamps a fresh id on c and validates it.
func NewContactInfo(c ContactInfo) (ContactInfo, error) {
	c.ID = newID()
	if err := Validate(c); err != nil {
		return ContactInfo{}, err
	}
	return c, nil
}

// NewService stamps id and created_at on s and validates it.
func NewService(s Service, now time.Time) (Service, error) {
	s.ID = newID()
	s.CreatedAt = Timestamp(now)
	if err := Validate(s); err != nil {
		return Service{}, err
	}
	return s, nil
}

// NewITCourse stamps id and created_at on c and validates it.
func NewITCourse(c ITCourse, now time.Time) (ITCourse, error) {
	c.ID = newID()
	c.CreatedAt = Timestamp(now)
	if err := Validate(c); err != nil {
		return ITCourse{}, err
	}
	return c, nil
}

// NewContactMessage validates the visitor input and builds the record to store.
func NewContactMessage(in ContactMessageInput, now time.Time) (ContactMessage, error) {
	if err := Validate(in); err != nil {
		return ContactMessage{}, err
	}
	m := ContactMessage{
		ID:              newID(),
		Name:            in.Name,
		Phone:           in.Phone,
		Email:           in.Email,
		ServiceInterest: in.ServiceInterest,
		Message:         in.Message,
		CreatedAt:       Timestamp(now),
	}
	return m, nil
}
