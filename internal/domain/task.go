package domain

import "time"

// Status is the canonical lifecycle state of a task.
type Status string

// Task statuses
const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
	StatusCancelled  Status = "Cancelled"
	StatusOnHold     Status = "OnHold"
)

// Category is the canonical work category of a task. Values outside the
// fixed vocabulary are allowed: an unrecognized category from the source
// workbook is kept as-is (title-cased) rather than discarded.
type Category string

// Task categories
const (
	CategoryInstallation Category = "Installation"
	CategoryRepair       Category = "Repair"
	CategoryDevelopment  Category = "Development"
	CategoryDelivery     Category = "Delivery"
	CategoryCommercial   Category = "Commercial"
)

// TaskRecord represents a single canonical task produced by an import.
// It is immutable once built; the caller owns it from there on.
type TaskRecord struct {
	ID                string     `json:"id"`
	PONumber          string     `json:"poNumber,omitempty"`
	DateCreated       time.Time  `json:"dateCreated"`
	Category          Category   `json:"category,omitempty"`
	ActionDescription string     `json:"actionDescription"`
	Customer          string     `json:"customer"`
	Requester         string     `json:"requester"`
	Responsible       string     `json:"responsible"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Status            Status     `json:"status"`
	Notes             string     `json:"notes,omitempty"`

	// Flag columns from the source workbook. Independent of Category:
	// more than one may be set on the same row.
	InstallationFlag bool `json:"installationFlag"`
	RepairFlag       bool `json:"repairFlag"`
	DevelopmentFlag  bool `json:"developmentFlag"`
	DeliveryFlag     bool `json:"deliveryFlag"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
