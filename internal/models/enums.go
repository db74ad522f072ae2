package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ServiceType is the kind of offering a Service describes.
type ServiceType string

const (
	ServiceTutoring         ServiceType = "tutoring"
	ServiceComputerTraining ServiceType = "computer-training"
)

// Subject identifies the software an ITCourse teaches.
type Subject string

const (
	SubjectWord       Subject = "word"
	SubjectPowerPoint Subject = "powerpoint"
	SubjectExcel      Subject = "excel"
	SubjectNetBeans   Subject = "netbeans"
	SubjectQGIS       Subject = "qgis"
)

// Level is the difficulty of an ITCourse.
type Level string

const (
	LevelBasic    Level = "basic"
	LevelAdvanced Level = "advanced"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTutoring, ServiceComputerTraining:
		return true
	}
	return false
}

func (s Subject) Valid() bool {
	switch s {
	case SubjectWord, SubjectPowerPoint, SubjectExcel, SubjectNetBeans, SubjectQGIS:
		return true
	}
	return false
}

func (l Level) Valid() bool {
	switch l {
	case LevelBasic, LevelAdvanced:
		return true
	}
	return false
}

func (t ServiceType) String() string { return string(t) }
func (s Subject) String() string     { return string(s) }
func (l Level) String() string       { return string(l) }

// AllSubjects lists the subject domain in catalog order.
func AllSubjects() []Subject {
	return []Subject{SubjectWord, SubjectPowerPoint, SubjectExcel, SubjectNetBeans, SubjectQGIS}
}

func ParseServiceType(s string) (ServiceType, error) {
	return parseEnum[ServiceType]("service type", s)
}
func ParseSubject(s string) (Subject, error) { return parseEnum[Subject]("subject", s) }
func ParseLevel(s string) (Level, error)     { return parseEnum[Level]("level", s) }

type enum interface {
	~string
	Valid() bool
}

func parseEnum[T enum](kind, s string) (T, error) {
	v := T(s)
	if !v.Valid() {
		var zero T
		return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalid, kind, s)
	}
	return v, nil
}

func unmarshalEnumJSON[T enum](kind string, b []byte, dst *T) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s must be a string", ErrInvalid, kind)
	}
	v, err := parseEnum[T](kind, s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// legacyValues maps the Portuguese values written by the first version of
// the site onto the current ones. Only stored documents are translated.
var legacyValues = map[string]string{
	"explicacao":  string(ServiceTutoring),
	"informatica": string(ServiceComputerTraining),
	"basico":      string(LevelBasic),
	"avancado":    string(LevelAdvanced),
}

// Stored documents go through the same check as request input, so a bad
// value written out-of-band surfaces as a decode error instead of leaking.
func unmarshalEnumBSON[T enum](kind string, t bsontype.Type, data []byte, dst *T) error {
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: %s stored as %s, want string", ErrInvalid, kind, t)
	}
	if cur, ok := legacyValues[s]; ok {
		s = cur
	}
	v, err := parseEnum[T](kind, s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (t *ServiceType) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON("service type", b, t)
}

func (s *Subject) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON("subject", b, s)
}

func (l *Level) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON("level", b, l)
}

func (t *ServiceType) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	return unmarshalEnumBSON("service type", bt, data, t)
}

func (s *Subject) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	return unmarshalEnumBSON("subject", bt, data, s)
}

func (l *Level) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	return unmarshalEnumBSON("level", bt, data, l)
}
