package shared

import "library-ledger/internal/pkg/errs"

var (
	ErrBookNotFound        = errs.Wrap(errs.ErrNotFound, "book not found")
	ErrReservationNotFound = errs.Wrap(errs.ErrNotFound, "reservation not found")
	ErrBookUnavailable     = errs.Wrap(errs.ErrUnavailable, "book not available")
	ErrAlreadyReserved     = errs.Wrap(errs.ErrDuplicateActive, "already reserved this book within the reservation window")
)
