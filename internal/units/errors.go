package units

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for unit lookup and conversion.
// These can be compared with errors.Is().
var (
	// ErrUnknownDomain indicates a domain name with no registered unit table.
	ErrUnknownDomain = constError("unknown domain")

	// ErrUnknownUnit indicates a unit identifier that is not a member of the table.
	// Passing one to Convert is a programming error; CLI input surfaces it to the user.
	ErrUnknownUnit = constError("unknown unit")

	// ErrAmbiguousUnit indicates a token that matches units in more than one domain.
	ErrAmbiguousUnit = constError("ambiguous unit")

	// ErrDomainMismatch indicates a conversion between units of different domains.
	ErrDomainMismatch = constError("units belong to different domains")

	// ErrInvalidFactor indicates a conversion factor that is zero, negative, NaN or infinite.
	ErrInvalidFactor = constError("invalid conversion factor")

	// ErrInvalidTable indicates a table that violates a structural invariant
	// (too few units, duplicate ids, missing base or default unit).
	ErrInvalidTable = constError("invalid unit table")
)
