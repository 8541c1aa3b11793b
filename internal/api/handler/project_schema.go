package handler

import (
	"time"

	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

type milestonePayload struct {
	Name      string    `json:"name" validate:"required"`
	Amount    float64   `json:"amount" validate:"gte=0"`
	DueDate   time.Time `json:"due_date"`
	Completed bool      `json:"completed"`
}

type installmentPayload struct {
	Label  string     `json:"label" validate:"required"`
	Amount float64    `json:"amount" validate:"gte=0"`
	Paid   bool       `json:"paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

type adminLedgerPayload struct {
	ClientFundsReceived float64 `json:"client_funds_received" validate:"gte=0"`
	VendorAmountPaid    float64 `json:"vendor_amount_paid" validate:"gte=0"`
}

type projectRequest struct {
	Title       string               `json:"judul" validate:"required"`
	ClientEmail string               `json:"client_email" validate:"required,email"`
	VendorEmail string               `json:"vendor_email" validate:"required,email"`
	BudgetTotal float64              `json:"budget_total" validate:"gte=0"`
	Milestones  []milestonePayload   `json:"milestones" validate:"dive"`
	Termins     []installmentPayload `json:"termins" validate:"dive"`
	AdminData   *adminLedgerPayload  `json:"admin_data,omitempty"`
}

type switchRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
}

func (r projectRequest) toInput() ports.ProjectInput {
	in := ports.ProjectInput{
		Title:       r.Title,
		ClientEmail: r.ClientEmail,
		VendorEmail: r.VendorEmail,
		BudgetTotal: r.BudgetTotal,
	}
	for _, m := range r.Milestones {
		in.Milestones = append(in.Milestones, domain.Milestone{
			Name:      m.Name,
			Amount:    m.Amount,
			DueDate:   m.DueDate,
			Completed: m.Completed,
		})
	}
	for _, t := range r.Termins {
		in.Termins = append(in.Termins, domain.Installment{
			Label:  t.Label,
			Amount: t.Amount,
			Paid:   t.Paid,
			PaidAt: t.PaidAt,
		})
	}
	if r.AdminData != nil {
		in.AdminData = &domain.AdminLedger{
			ClientFundsReceived: r.AdminData.ClientFundsReceived,
			VendorAmountPaid:    r.AdminData.VendorAmountPaid,
		}
	}
	return in
}
