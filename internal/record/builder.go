// Package record assembles normalized fields into TaskRecords and applies
// the required-field checks.
package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/techmac/taskimport/internal/domain"
	"github.com/techmac/taskimport/internal/normalize"
)

// Rejection explains why a row did not produce a record. Blank rows are a
// normal artifact of hand-maintained sheets and are reported separately
// from rows that carry data but miss required fields.
type Rejection struct {
	Blank         bool
	MissingFields []string
}

// Builder turns normalized fields into TaskRecords. The identifier and
// timestamp sources are injectable so imports can be replayed
// deterministically in tests.
type Builder struct {
	newID func() string
	now   func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithIDFunc overrides the record identifier source.
func WithIDFunc(fn func() string) Option {
	return func(b *Builder) { b.newID = fn }
}

// WithClock overrides the timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(b *Builder) { b.now = fn }
}

// NewBuilder creates a Builder with UUID identifiers and a UTC wall clock.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// requiredFields are checked in output-schema order so rejection details
// stay stable across runs.
var requiredFields = []struct {
	name  string
	value func(normalize.Fields) string
}{
	{"actionDescription", func(f normalize.Fields) string { return f.Action }},
	{"customer", func(f normalize.Fields) string { return f.Customer }},
	{"requester", func(f normalize.Fields) string { return f.Requester }},
	{"responsible", func(f normalize.Fields) string { return f.Responsible }},
}

// Build validates the fields and assembles a TaskRecord. An empty action
// description marks the row as blank (trailing rows in manual sheets); any
// other missing required field rejects the row with the full list of
// offenders. System fields are assigned here and never read from input.
func (b *Builder) Build(fields normalize.Fields) (domain.TaskRecord, *Rejection) {
	if fields.Action == "" {
		return domain.TaskRecord{}, &Rejection{Blank: true}
	}

	var missing []string
	for _, rf := range requiredFields {
		if rf.value(fields) == "" {
			missing = append(missing, rf.name)
		}
	}
	if len(missing) > 0 {
		return domain.TaskRecord{}, &Rejection{MissingFields: missing}
	}

	now := b.now()
	return domain.TaskRecord{
		ID:                b.newID(),
		PONumber:          fields.PONumber,
		DateCreated:       fields.DateCreated,
		Category:          fields.Category,
		ActionDescription: fields.Action,
		Customer:          fields.Customer,
		Requester:         fields.Requester,
		Responsible:       fields.Responsible,
		Deadline:          fields.Deadline,
		Status:            fields.Status,
		Notes:             fields.Notes,
		InstallationFlag:  fields.Installation,
		RepairFlag:        fields.Repair,
		DevelopmentFlag:   fields.Development,
		DeliveryFlag:      fields.Delivery,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
