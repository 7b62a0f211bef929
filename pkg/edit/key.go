package edit

// Control bytes recognized by the dispatcher. Raw mode disables
// kernel-level signal generation, so cancel and terminate semantics are
// reimplemented here from the raw bytes.
const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyEnter = 0x0D
	keyEsc   = 0x1B

	// Recognized but deliberately unbound: there is no deletion
	// operation, so backspace falls through to the default insert path.
	keyBackspace = 0x7F
)

// Outcome describes how a read cycle ended.
type Outcome int

const (
	// Completed means the line was accepted with Enter.
	Completed Outcome = iota
	// Cancelled means the line was abandoned with Ctrl-C.
	Cancelled
	// Terminated means the session should end: Ctrl-D, or end of input.
	Terminated
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Result is the outcome of one read cycle. Line holds the accepted line
// for Completed and the partial line for Cancelled; it is empty for
// Terminated.
type Result struct {
	Outcome Outcome
	Line    string
}
