package bar

// BarError is a custom error type for bar-related errors
type BarError string

// Error implements the error interface
func (e BarError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrServerNotFound      BarError = "server not found"
	ErrDrinkNotFound       BarError = "drink not found"
	ErrDrinkExists         BarError = "drink already exists"
	ErrUnknownLanguage     BarError = "unknown language"
	ErrWrongIntoxication   BarError = "intoxication must be between 0 and 100"
	ErrWrongPortionSize    BarError = "portion size out of bounds"
	ErrWrongPortionsPerDay BarError = "portions per day out of bounds"
	ErrNameTooLong         BarError = "drink name too long"
	ErrTooManyDrinks       BarError = "server drink capacity reached"
	ErrNilConfig           BarError = "config cannot be nil"
	ErrNilRepository       BarError = "repository cannot be nil"
	ErrNilCatalogs         BarError = "locale catalogs cannot be nil"
	ErrNilUUIDGenerator    BarError = "UUID generator cannot be nil"
)
