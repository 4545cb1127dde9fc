package order

import (
	"fmt"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
)

// PaymentType describes how the customer pays for an order.
type PaymentType int

const (
	// UnknownPaymentType is the invalid zero value.
	UnknownPaymentType PaymentType = iota

	// FullPayment means the full price is settled at once.
	FullPayment

	// InstallmentPlan means the price is split across monthly payments;
	// orders with this type carry InstallmentDetails.
	InstallmentPlan
)

func paymentTypeStrings() map[PaymentType]string {
	return map[PaymentType]string{
		FullPayment:     "Full Payment",
		InstallmentPlan: "Installment Plan",
	}
}

// PaymentTypeFromString parses the display form ("Full Payment",
// "Installment Plan").
func PaymentTypeFromString(s string) (PaymentType, error) {
	for pt, str := range paymentTypeStrings() {
		if str == s {
			return pt, nil
		}
	}
	return UnknownPaymentType, errs.NewValueIsInvalidErrorWithCause("paymentType",
		fmt.Errorf("%q is not a valid payment type", s))
}

// String returns the display form, or "Unknown".
func (p PaymentType) String() string {
	if str, ok := paymentTypeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects the zero value and anything outside the enum.
func (p PaymentType) Validate() error {
	if _, ok := paymentTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentType",
			fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

// installmentPlanMonths lists the plan lengths the store offers.
var installmentPlanMonths = map[int]bool{3: true, 6: true, 12: true, 24: true}

// InstallmentDetails is a value object describing the payment schedule of
// an installment-plan order. It is read-only with respect to the order
// lifecycle workflow.
type InstallmentDetails struct {
	planMonths        int
	monthlyAmount     kernel.Money
	installmentsPaid  int
	totalInstallments int
	nextDueDate       *time.Time
}

// NewInstallmentDetails creates an InstallmentDetails value.
// planMonths must be one of 3, 6, 12 or 24; installmentsPaid must fit in
// [0, totalInstallments]; totalInstallments must equal planMonths.
func NewInstallmentDetails(
	planMonths int,
	monthlyAmount kernel.Money,
	installmentsPaid int,
	nextDueDate *time.Time,
) (InstallmentDetails, error) {
	if !installmentPlanMonths[planMonths] {
		return InstallmentDetails{}, errs.NewValueIsInvalidErrorWithCause("installmentPlan",
			fmt.Errorf("%d months is not an offered plan", planMonths))
	}
	if installmentsPaid < 0 || installmentsPaid > planMonths {
		return InstallmentDetails{}, errs.NewValueIsOutOfRangeError(
			"installmentsPaid", installmentsPaid, 0, planMonths)
	}
	return InstallmentDetails{
		planMonths:        planMonths,
		monthlyAmount:     monthlyAmount,
		installmentsPaid:  installmentsPaid,
		totalInstallments: planMonths,
		nextDueDate:       nextDueDate,
	}, nil
}

// PlanMonths returns the plan length in months.
func (d InstallmentDetails) PlanMonths() int {
	return d.planMonths
}

// Plan returns the display form of the plan, e.g. "6 Months".
func (d InstallmentDetails) Plan() string {
	return fmt.Sprintf("%d Months", d.planMonths)
}

// MonthlyAmount returns the amount due each month.
func (d InstallmentDetails) MonthlyAmount() kernel.Money {
	return d.monthlyAmount
}

// InstallmentsPaid returns how many installments have been settled.
func (d InstallmentDetails) InstallmentsPaid() int {
	return d.installmentsPaid
}

// TotalInstallments returns the total number of installments.
func (d InstallmentDetails) TotalInstallments() int {
	return d.totalInstallments
}

// NextDueDate returns when the next installment is due, or nil when the
// plan is fully paid.
func (d InstallmentDetails) NextDueDate() *time.Time {
	return d.nextDueDate
}
