// Package inquiry runs the customer inquiry state machine:
// RECEIVED → QUOTED → DONE, with REJECTED settable directly. DONE, REJECTED
// and CUSTOMER_REJECTED are terminal.
package inquiry

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/internal/bus"
	"main/internal/model"
	"main/internal/model/enum"
	"main/pkg/exception"
)

// Inquiry is a customer inquiry. Keyed on inquiry id, which is unique across
// the service and distinct from the product id.
type Inquiry struct {
	InquiryID string
	Product   model.Bond
	Side      enum.TradeSide
	Quantity  int64
	Price     decimal.Decimal
	State     enum.InquiryState
}

// Row renders the inquiry for historical sinks.
func (i Inquiry) Row() []string {
	return []string{
		i.InquiryID,
		i.Product.ID,
		i.Side.String(),
		strconv.FormatInt(i.Quantity, 10),
		model.PriceText(i.Price),
		i.State.String(),
	}
}

// Quoter responds to a received inquiry with a quote and re-delivers it.
type Quoter interface {
	Quote(Inquiry)
}

// Service drives inquiries through their lifecycle. Received inquiries are
// handed to the quoter; quoted ones re-delivered to the service complete as
// DONE and fan out to listeners.
type Service struct {
	*bus.Service[Inquiry]
	quoter Quoter
}

func NewService() *Service {
	return &Service{
		Service: bus.New(func(i Inquiry) string { return i.InquiryID }),
	}
}

// SetQuoter attaches the quoting connector.
func (s *Service) SetQuoter(q Quoter) {
	s.quoter = q
}

// OnMessage applies one delivery to the state machine.
func (s *Service) OnMessage(inq Inquiry) {
	switch inq.State {
	case enum.InquiryReceived:
		s.Put(inq)
		if s.quoter != nil {
			s.quoter.Quote(inq)
		}
	case enum.InquiryQuoted:
		inq.State = enum.InquiryDone
		s.Put(inq)
		s.Notify(inq)
	default:
		// terminal deliveries are dropped
	}
}

// SendQuote updates the quoted price and re-notifies listeners. It only
// applies to inquiries still in flight (RECEIVED or QUOTED).
func (s *Service) SendQuote(inquiryID string, price decimal.Decimal) error {
	inq, ok := s.Get(inquiryID)
	if !ok {
		return errors.Wrap(exception.ErrUnknownKey, "inquiry "+inquiryID)
	}
	if inq.State != enum.InquiryReceived && inq.State != enum.InquiryQuoted {
		return errors.Wrap(exception.ErrInvalidTransition, "quote on "+inq.State.String())
	}
	inq.Price = price
	s.Put(inq)
	s.Notify(inq)
	return nil
}

// Reject moves an in-flight inquiry to REJECTED without notifying listeners.
// Terminal inquiries cannot be rejected.
func (s *Service) Reject(inquiryID string) error {
	inq, ok := s.Get(inquiryID)
	if !ok {
		return errors.Wrap(exception.ErrUnknownKey, "inquiry "+inquiryID)
	}
	if inq.State.IsTerminal() {
		return errors.Wrap(exception.ErrInvalidTransition, "reject on "+inq.State.String())
	}
	inq.State = enum.InquiryRejected
	s.Put(inq)
	return nil
}

// QuoteConnector quotes every received inquiry at par and re-delivers it as
// QUOTED, completing the quote-and-redeliver cycle synchronously.
type QuoteConnector struct {
	svc        *Service
	quotePrice decimal.Decimal
}

func NewQuoteConnector(svc *Service) *QuoteConnector {
	return &QuoteConnector{svc: svc, quotePrice: decimal.NewFromInt(100)}
}

func (c *QuoteConnector) Quote(inq Inquiry) {
	if inq.State != enum.InquiryReceived {
		return
	}
	inq.Price = c.quotePrice
	inq.State = enum.InquiryQuoted
	c.svc.OnMessage(inq)
}
