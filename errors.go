package glhal

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrContract marks a caller bug: an argument outside the documented
	// domain of an operation.
	ErrContract = errors.New("glhal: contract violation")

	// ErrUnsupported marks a request the active profile cannot satisfy.
	ErrUnsupported = errors.New("glhal: unsupported by target profile")
)

// ContractError describes a contract violation detected by operation Op.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("glhal: %s: %s", e.Op, e.Msg)
}

// Is reports whether target is ErrContract.
func (e *ContractError) Is(target error) bool { return target == ErrContract }

// UnsupportedError describes a request the active profile cannot satisfy.
type UnsupportedError struct {
	Op     string
	What   string
	Target string
}

func (e *UnsupportedError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("glhal: %s: %s is not supported", e.Op, e.What)
	}
	return fmt.Sprintf("glhal: %s: %s is not supported on %s", e.Op, e.What, e.Target)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// DriverError is an error reported by the driver through glGetError after
// operation Op. Driver errors are never retried.
type DriverError struct {
	Op   string
	Code uint32
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("glhal: %s: driver error %s", e.Op, driverErrorName(e.Code))
}

func driverErrorName(code uint32) string {
	switch code {
	case 0x0500:
		return "GL_INVALID_ENUM"
	case 0x0501:
		return "GL_INVALID_VALUE"
	case 0x0502:
		return "GL_INVALID_OPERATION"
	case 0x0505:
		return "GL_OUT_OF_MEMORY"
	case 0x0506:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("%#x", code)
}

var panicOnViolation atomic.Bool

func init() {
	panicOnViolation.Store(assertDefault)
}

// SetPanicOnViolation selects the contract-violation policy. When enabled,
// [Violation] panics instead of returning an error. The default is
// disabled unless the module is built with the glhal_assert tag.
func SetPanicOnViolation(enabled bool) {
	panicOnViolation.Store(enabled)
}

// PanicOnViolation reports the current contract-violation policy.
func PanicOnViolation() bool {
	return panicOnViolation.Load()
}

// Violation reports a contract violation in operation op. It logs the
// violation and either panics or returns a *ContractError, depending on
// the policy selected by [SetPanicOnViolation].
func Violation(op, format string, args ...any) error {
	err := &ContractError{Op: op, Msg: fmt.Sprintf(format, args...)}
	Logger().Warn("glhal: contract violation", "op", op, "msg", err.Msg)
	if panicOnViolation.Load() {
		panic(err)
	}
	return err
}

// Unsupported returns an *UnsupportedError for op.
func Unsupported(op, what, target string) error {
	return &UnsupportedError{Op: op, What: what, Target: target}
}

// CheckDriver converts a glGetError code into a *DriverError.
// A zero code yields nil.
func CheckDriver(op string, code uint32) error {
	if code == 0 {
		return nil
	}
	err := &DriverError{Op: op, Code: code}
	Logger().Warn("glhal: driver error", "op", op, "code", fmt.Sprintf("%#x", code))
	return err
}
