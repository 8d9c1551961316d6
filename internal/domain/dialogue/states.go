package dialogue

// State is the step a conversation is waiting on
type State string

const (
	StateNone            State = ""
	StateActivity        State = "ACTIVITY"
	StatePoints          State = "POINTS"
	StateIdle            State = "IDLE"
	StateDelete          State = "DELETE"
	StateExecuteActivity State = "EXECUTE_ACTIVITY"
	StateCancel          State = "CANCEL"
)

func (s State) String() string {
	if s == StateNone {
		return "NONE"
	}
	return string(s)
}

// awaitsText reports whether free text messages are routed to the session
func (s State) awaitsText() bool {
	return s == StateActivity || s == StatePoints
}
