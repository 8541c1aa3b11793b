package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// Milestone is a named chunk of project work with a budgeted amount.
type Milestone struct {
	Name      string    `json:"name" bson:"name"`
	Amount    float64   `json:"amount" bson:"amount"`
	DueDate   time.Time `json:"due_date" bson:"due_date"`
	Completed bool      `json:"completed" bson:"completed"`
}

// Installment (termin) is one scheduled payment tranche.
type Installment struct {
	Label  string     `json:"label" bson:"label"`
	Amount float64    `json:"amount" bson:"amount"`
	Paid   bool       `json:"paid" bson:"paid"`
	PaidAt *time.Time `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}

// AdminLedger holds financial totals visible only to privileged roles. It is
// owned 1:1 by its project and disappears with it.
type AdminLedger struct {
	ClientFundsReceived float64 `json:"client_funds_received" bson:"client_funds_received"`
	VendorAmountPaid    float64 `json:"vendor_amount_paid" bson:"vendor_amount_paid"`
}

// Project is the core aggregate root. ClientEmail and VendorEmail are the
// sole basis for non-privileged access; they are always compared in
// normalized form (trimmed, lowercased).
type Project struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"judul" bson:"judul"`
	ClientEmail string        `json:"client_email" bson:"client_email"`
	VendorEmail string        `json:"vendor_email" bson:"vendor_email"`
	BudgetTotal float64       `json:"budget_total" bson:"budget_total"`
	Milestones  []Milestone   `json:"milestones" bson:"milestones"`
	Termins     []Installment `json:"termins" bson:"termins"`
	AdminData   *AdminLedger  `json:"admin_data,omitempty" bson:"admin_data,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// ProjectAccess is one entry of the switchable-project directory: a project
// the identity participates in, with the role it would hold there.
type ProjectAccess struct {
	ID          string `json:"id"`
	Title       string `json:"judul"`
	DerivedRole Role   `json:"role"`
}
