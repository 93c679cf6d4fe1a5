package jokes

import (
	"fmt"
	"io"
)

// ConsoleView prints what a window would show, one line per update.
type ConsoleView struct {
	out io.Writer

	joke      string
	punchline string
}

func NewConsoleView(out io.Writer) *ConsoleView {
	return &ConsoleView{out: out}
}

func (v *ConsoleView) SetJoke(text string) {
	v.joke = text
	fmt.Fprintf(v.out, "Joke:   %s\n", text)
}

func (v *ConsoleView) SetPunchline(text string) {
	v.punchline = text
	if text == "" {
		return
	}
	fmt.Fprintf(v.out, "Answer: %s\n", text)
}

func (v *ConsoleView) Clear() {
	v.joke, v.punchline = "", ""
	fmt.Fprintln(v.out, "-- starting over --")
}

func (v *ConsoleView) Joke() string      { return v.joke }
func (v *ConsoleView) Punchline() string { return v.punchline }
