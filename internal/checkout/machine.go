// Package checkout drives the manual-payment flow for a single product: the
// buyer picks a payment method, reads the payment instructions, and confirms
// by handing off a pre-composed message to WhatsApp. Nothing here touches the
// database; an order exists only as the composed message.
package checkout

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Step is the buyer's position in the flow.
type Step string

const (
	StepSelectMethod Step = "select"
	StepMethodDetail Step = "method-detail"
	StepConfirmation Step = "confirmation"
)

// Method is a supported manual payment method.
type Method string

const (
	MethodGooglePay    Method = "google-pay"
	MethodBankTransfer Method = "bank-transfer"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed from
	// the current step.
	ErrInvalidTransition = errors.New("invalid checkout transition")
	// ErrUnknownMethod is returned for a payment method outside the
	// supported set.
	ErrUnknownMethod = errors.New("unknown payment method")
	// ErrBuyerDetailsRequired gates submission until both buyer fields
	// hold non-blank content.
	ErrBuyerDetailsRequired = errors.New("buyer name and address required")
)

// Session is one buyer's in-flight checkout. It is ephemeral: closing the
// flow discards it entirely. Handlers run on separate goroutines and may hit
// the same session id concurrently, so every transition and read goes
// through the session mutex; serialization uses Snapshot.
type Session struct {
	mu sync.Mutex

	id          string
	productID   string
	productName string
	amount      decimal.Decimal
	createdAt   time.Time

	step         Step
	method       Method
	buyerName    string
	buyerAddress string
}

// View is a point-in-time copy of a session, safe to serialize while other
// requests keep driving the live session.
type View struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Amount       decimal.Decimal `json:"amount"`
	Step         Step            `json:"step"`
	Method       Method          `json:"method,omitempty"`
	BuyerName    string          `json:"buyer_name,omitempty"`
	BuyerAddress string          `json:"buyer_address,omitempty"`
}

// ID returns the session identifier. It is immutable after Open.
func (s *Session) ID() string {
	return s.id
}

// Snapshot copies the session state under the lock.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		ID:           s.id,
		ProductID:    s.productID,
		ProductName:  s.productName,
		Amount:       s.amount,
		Step:         s.step,
		Method:       s.method,
		BuyerName:    s.buyerName,
		BuyerAddress: s.buyerAddress,
	}
}

// Select picks a payment method and advances to its detail step.
func (s *Session) Select(m Method) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepSelectMethod {
		return ErrInvalidTransition
	}
	if m != MethodGooglePay && m != MethodBankTransfer {
		return ErrUnknownMethod
	}
	s.method = m
	s.step = StepMethodDetail
	return nil
}

// Back steps backwards. Leaving the method detail clears the selected
// method; leaving confirmation retains it so the buyer returns to the same
// instructions.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.step {
	case StepMethodDetail:
		s.step = StepSelectMethod
		s.method = ""
		return nil
	case StepConfirmation:
		s.step = StepMethodDetail
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Next advances from the payment instructions to confirmation.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepMethodDetail {
		return ErrInvalidTransition
	}
	s.step = StepConfirmation
	return nil
}

// SetBuyer records the buyer details collected on the confirmation step.
func (s *Session) SetBuyer(name, address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buyerName = name
	s.buyerAddress = address
}

// CanSubmit reports whether the handoff may be sent: both buyer fields must
// carry non-whitespace content and the flow must be at confirmation.
func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSubmitLocked()
}

func (s *Session) canSubmitLocked() bool {
	return s.step == StepConfirmation &&
		strings.TrimSpace(s.buyerName) != "" &&
		strings.TrimSpace(s.buyerAddress) != ""
}

// Submit validates the gate and returns the handoff message for this
// session. It does not mutate anything; the caller destroys the session
// after a successful handoff.
func (s *Session) Submit() (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepConfirmation {
		return Message{}, ErrInvalidTransition
	}
	if !s.canSubmitLocked() {
		return Message{}, ErrBuyerDetailsRequired
	}
	return Message{
		ProductName:  s.productName,
		ProductID:    s.productID,
		Amount:       s.amount,
		BuyerName:    s.buyerName,
		BuyerAddress: s.buyerAddress,
	}, nil
}
