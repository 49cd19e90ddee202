package highlight

type (
	// Event is a single markup instruction.
	//
	// A stream of events is always well-nested:
	// every OpenSpan is matched by a later CloseSpan,
	// and spans never nest.
	Event interface{ event() }

	// OpenSpan starts a span styled with a CSS class.
	OpenSpan struct {
		Class string
	}

	// CloseSpan ends the currently open span.
	CloseSpan struct{}

	// Text is a run of the original source text, verbatim.
	Text struct {
		Text string
	}
)

var (
	_ Event = OpenSpan{}
	_ Event = CloseSpan{}
	_ Event = Text{}
)

func (OpenSpan) event()  {}
func (CloseSpan) event() {}
func (Text) event()      {}
