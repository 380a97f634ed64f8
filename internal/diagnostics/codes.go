package diagnostics

// Diagnostic codes for SandScript stages
const (
	// Lexer errors (L prefix)
	ErrNoCode              = "L0001"
	ErrUnknownToken        = "L0002"
	ErrUnterminatedChar    = "L0003"
	ErrUnterminatedString  = "L0004"
	ErrUnterminatedComment = "L0005"

	// Parser errors (P prefix)
	ErrUnexpectedToken     = "P0001"
	ErrExpectedStatement   = "P0002"
	ErrExpectedPrimary     = "P0003"
	ErrUnknownVariableType = "P0004"
	ErrUnknownAssignment   = "P0005"
	ErrUnconsumedLiteral   = "P0006"

	// Semantic analysis errors (T prefix)
	ErrTypeMismatch       = "T0001"
	ErrUndefinedSymbol    = "T0002"
	ErrRedeclaredSymbol   = "T0003"
	ErrUnreadable         = "T0004"
	ErrUnwritable         = "T0005"
	ErrUnsupportedBinary  = "T0006"
	ErrUnsupportedUnary   = "T0007"
	ErrWrongArgumentCount = "T0008"
	ErrMissingArgument    = "T0009"
	ErrMissingInitialType = "T0010"
	ErrMissingReturn      = "T0011"

	// Informational codes (I prefix)
	InfoStageTiming = "I0001"
)
