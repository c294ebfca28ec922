package offer

// OfferError is a typed error for offer operations
type OfferError string

// Error implements the error interface
func (e OfferError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when a nil config is provided
	ErrNilConfig = OfferError("config cannot be nil")

	// ErrNilBarService is returned when no bar service is provided
	ErrNilBarService = OfferError("bar service cannot be nil")

	// ErrNilClock is returned when no clock is provided
	ErrNilClock = OfferError("clock cannot be nil")
)
