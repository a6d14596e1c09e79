package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/logger"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/session"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/timeutil"
)

// CardDetails are the payment form fields. This is a demo; the values are
// shape-checked and then discarded.
type CardDetails struct {
	// Number is the card number, spaces allowed
	Number string `json:"cardNumber"`

	// Expiry is the expiry date in MM/YY format
	Expiry string `json:"expiryDate"`

	// CVV is the 3 or 4 digit security code
	CVV string `json:"cvv"`

	// HolderName is the name on the card
	HolderName string `json:"cardName"`
}

// PaymentReceipt is the outcome of a completed payment.
type PaymentReceipt struct {
	// ConfirmationNumber is the booking reference to show the customer
	ConfirmationNumber string `json:"confirmation_number"`

	// Booking is the paid booking snapshot
	Booking domain.Booking `json:"booking"`
}

// PaymentUseCase completes the booking flow with a simulated card payment.
type PaymentUseCase interface {
	// Pay validates the card details and marks the session's booking paid.
	// Payment is at-most-once: a second attempt on the same booking returns
	// domain.ErrAlreadyPaid.
	Pay(ctx context.Context, sessionID string, card CardDetails) (*PaymentReceipt, error)
}

type paymentUseCase struct {
	store session.Store
	clock timeutil.Clock
	log   *logger.Logger
}

// NewPaymentUseCase creates a PaymentUseCase.
func NewPaymentUseCase(store session.Store, clock timeutil.Clock, log *logger.Logger) PaymentUseCase {
	return &paymentUseCase{store: store, clock: clock, log: log}
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// Pay implements PaymentUseCase.Pay.
func (uc *paymentUseCase) Pay(ctx context.Context, sessionID string, card CardDetails) (*PaymentReceipt, error) {
	if err := validateCard(card); err != nil {
		return nil, err
	}

	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Booking == nil {
		return nil, domain.ErrBookingNotFound
	}
	if sess.Booking.Status == domain.BookingPaid {
		return nil, domain.ErrAlreadyPaid
	}

	sess.Booking.Status = domain.BookingPaid

	// Payment ends the flow; only the paid booking survives in the session.
	sess.SearchData = nil
	sess.SearchResults = nil
	sess.SelectedFlight = nil
	sess.SeatMap = nil
	sess.SelectedSeats = nil

	if err := uc.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	uc.log.Info().
		Str("session_id", sessionID).
		Str("booking_id", sess.Booking.ID).
		Str("confirmation", sess.Booking.ConfirmationNumber).
		Msg("payment completed")

	return &PaymentReceipt{
		ConfirmationNumber: sess.Booking.ConfirmationNumber,
		Booking:            *sess.Booking,
	}, nil
}

// validateCard shape-checks the payment form fields.
func validateCard(card CardDetails) error {
	number := strings.ReplaceAll(card.Number, " ", "")
	switch {
	case number == "" || card.Expiry == "" || card.CVV == "" || strings.TrimSpace(card.HolderName) == "":
		return fmt.Errorf("%w: all card fields are required", domain.ErrInvalidRequest)
	case !cardNumberPattern.MatchString(number):
		return fmt.Errorf("%w: card number must be 13 to 19 digits", domain.ErrInvalidRequest)
	case !expiryPattern.MatchString(card.Expiry):
		return fmt.Errorf("%w: expiry date must be MM/YY", domain.ErrInvalidRequest)
	case !cvvPattern.MatchString(card.CVV):
		return fmt.Errorf("%w: CVV must be 3 or 4 digits", domain.ErrInvalidRequest)
	}
	return nil
}

var _ PaymentUseCase = (*paymentUseCase)(nil)
