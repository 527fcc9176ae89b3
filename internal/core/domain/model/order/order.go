package order

import (
	"errors"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
)

// MaxOtpAttempts bounds failed one-time-code verifications per order to resist
// brute force over the 6-digit space.
const MaxOtpAttempts = 5

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOtpMismatch indicates the submitted one-time code does not equal the
	// stored one.
	ErrOtpMismatch = errors.New("otp does not match")

	// ErrOtpAttemptsExceeded indicates the order has run out of verification
	// attempts; even the correct code is rejected afterwards.
	ErrOtpAttemptsExceeded = errors.New("otp verification attempts exceeded")
)

// Order is the aggregate root for a purchase order. It owns the lifecycle
// state machine and all invariants around claiming, hand-off confirmation and
// cancellation.
//
// Invariants:
//   - total always equals the sum of line-item subtotals
//   - etaMinutes is computed once at creation and never changes
//   - agentID is set if and only if status is on_the_way or delivered
//   - terminal statuses (delivered, cancelled) reject every further mutation
//   - the one-time code is compared, never read back through the aggregate's
//     read paths except for persistence and the creation response
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	items       []LineItem
	total       float64
	status      Status
	location    DeliveryLocation
	etaMinutes  int
	otp         OTP
	agentID     *kernel.UUID
	cancelled   string
	createdAt   time.Time
	deliveredAt *time.Time
	otpAttempts int

	// version is the persistence version used for conditional writes.
	// It is zero for new aggregates and meaningful only after restore.
	version int64

	isConstructed bool
}

// NewOrder creates a pending order. The total is computed from the line items
// here; callers wishing to honor a client-supplied total must compare it with
// TotalOf before construction.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	location DeliveryLocation,
	etaMinutes int,
	otp OTP,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setLocation(location),
		o.setEtaMinutes(etaMinutes),
		o.setOtp(otp),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	Items              []LineItem
	Location           DeliveryLocation
	EtaMinutes         int
	Otp                OTP
	Status             Status
	AgentID            *kernel.UUID
	CancellationReason string
	CreatedAt          time.Time
	DeliveredAt        *time.Time
	OtpAttempts        int
	Version            int64
}

// RestoreOrder reconstructs an order from persistence, re-checking the
// cross-field invariants so corrupt records surface as errors instead of
// invalid aggregates.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		createdAt:     params.CreatedAt,
		deliveredAt:   params.DeliveredAt,
		cancelled:     params.CancellationReason,
		otpAttempts:   params.OtpAttempts,
		version:       params.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setCustomerID(params.CustomerID),
		o.setItems(params.Items),
		o.setLocation(params.Location),
		o.setEtaMinutes(params.EtaMinutes),
		o.setOtp(params.Otp),
		params.Status.Validate(),
		params.Status.ValidateCanHaveAgent(params.AgentID != nil),
	); err != nil {
		return nil, err
	}

	o.status = params.Status
	if params.AgentID != nil {
		if err := params.AgentID.Validate(); err != nil {
			return nil, err
		}
		agentID := *params.AgentID
		o.agentID = &agentID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchaser's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the monetary sum over line items, fixed at creation.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Location returns the delivery destination.
func (o *Order) Location() DeliveryLocation {
	return o.location
}

// EtaMinutes returns the estimated delivery time computed at creation.
// It is a creation-time commitment, never recomputed.
func (o *Order) EtaMinutes() int {
	return o.etaMinutes
}

// Otp returns the one-time code value object. The raw code must only be
// surfaced in the creation response and in persistence.
func (o *Order) Otp() OTP {
	return o.otp
}

// AgentID returns the assigned fulfillment agent's ID, or nil before claim.
func (o *Order) AgentID() *kernel.UUID {
	return o.agentID
}

// CancellationReason returns the operator-recorded reason, empty unless cancelled.
func (o *Order) CancellationReason() string {
	return o.cancelled
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, or nil before terminal success.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// OtpAttempts returns the number of failed verification attempts so far.
func (o *Order) OtpAttempts() int {
	return o.otpAttempts
}

// Version returns the persistence version for conditional writes.
func (o *Order) Version() int64 {
	return o.version
}

// Claim assigns the order to a fulfillment agent.
//
// The transition is only legal from pending; a second claim on an already
// claimed order is rejected with an invalid-state error. The race between two
// concurrent claimants is resolved at the store through a conditional write on
// Version, not here.
func (o *Order) Claim(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	return nil
}

// Complete confirms the hand-off with the submitted one-time code.
//
// Completion is only legal from on_the_way. A mismatching code increments the
// attempt counter and returns ErrOtpMismatch; callers must persist the
// aggregate afterwards so attempts survive across requests. Once
// MaxOtpAttempts failures have accumulated even the correct code is rejected.
func (o *Order) Complete(submittedCode string, now time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	if o.otpAttempts >= MaxOtpAttempts {
		return ErrOtpAttemptsExceeded
	}

	if !o.otp.Matches(submittedCode) {
		o.otpAttempts++
		return ErrOtpMismatch
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel aborts a pending order with an operator-recorded reason.
// Claimed and terminal orders cannot be cancelled.
func (o *Order) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelled = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.total = TotalOf(o.items)
	return nil
}

func (o *Order) setLocation(location DeliveryLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setEtaMinutes(etaMinutes int) error {
	if etaMinutes <= 0 {
		return errs.NewValueIsInvalidError("deliveryEtaMinutes")
	}
	o.etaMinutes = etaMinutes
	return nil
}

func (o *Order) setOtp(otp OTP) error {
	if err := otp.Validate(); err != nil {
		return err
	}
	o.otp = otp
	return nil
}
