package errcode

// Code is a stable error identifier for clock operations.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK              Code = "ok"
	InvalidDivider  Code = "invalid_divider"
	InvalidInstance Code = "invalid_instance"
	InvalidParams   Code = "invalid_params"
	ReservedGate    Code = "reserved_gate"
	ClockGated      Code = "clock_gated"
	Unsupported     Code = "unsupported"
	Timeout         Code = "timeout"

	Error Code = "error" // generic fallback
)

// E wraps a Code with the failing operation and an optional cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.InvalidDivider) match a wrapped E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New builds an *E for op.
func New(c Code, op, msg string) *E {
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
