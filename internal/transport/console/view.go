package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"console-quiz/internal/domain"
)

// View writes prompts, feedback and the final report to a console.
type View struct {
	out     io.Writer
	noColor bool
}

func NewView(out io.Writer, noColor bool) *View {
	return &View{out: out, noColor: noColor}
}

func (v *View) AskName() {
	fmt.Fprint(v.out, "Enter your name to start the quiz: ")
}

func (v *View) Welcome(playerName string) {
	fmt.Fprintf(v.out, "\nWelcome, %s! Get ready to test your knowledge!\n", playerName)
}

func (v *View) Question(number int, q domain.Question, deadline time.Duration) {
	fmt.Fprintf(v.out, "\nQuestion %d: %s\n", number, q.Prompt)
	for i, option := range q.Options {
		fmt.Fprintf(v.out, "%s: %s\n", domain.OptionLabel(i), option)
	}
	line := fmt.Sprintf("You have %d seconds to answer. Please enter your choice (%s):",
		int(deadline/time.Second), strings.Join(q.Labels(), ", "))
	fmt.Fprintln(v.out, stylize(line, v.noColor, colorMuted))
}

func (v *View) Correct() {
	fmt.Fprintln(v.out, stylize("Correct!", v.noColor, colorCorrect))
}

func (v *View) Incorrect(correctOption string) {
	fmt.Fprintln(v.out, stylize("Incorrect! The correct answer was "+correctOption, v.noColor, colorIncorrect))
}

func (v *View) TimedOut(correctOption string) {
	fmt.Fprintln(v.out, stylize("Time's up! The correct answer was "+correctOption, v.noColor, colorTimeout))
}

func (v *View) CaptureFailed() {
	fmt.Fprintln(v.out, stylize("An error occurred while reading the answer.", v.noColor, colorTimeout))
}

// Summary prints the final report table.
func (v *View) Summary(session domain.Session, total int) {
	_ = RenderReport(v.out, session, total)
}
