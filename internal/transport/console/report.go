package console

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"console-quiz/internal/domain"
)

const (
	questionWidth = 48
	givenWidth    = 13
	correctWidth  = 14
	resultWidth   = 12

	skippedMarker = "Skipped"
)

var border = "+" + strings.Repeat("-", questionWidth+2) +
	"+" + strings.Repeat("-", givenWidth+2) +
	"+" + strings.Repeat("-", correctWidth+2) +
	"+" + strings.Repeat("-", resultWidth+2) + "+"

// RenderReport writes the fixed-width results table and score line for a finished session.
// The output depends only on its arguments.
func RenderReport(w io.Writer, session domain.Session, total int) error {
	var buf bytes.Buffer
	buf.WriteString("\nQuiz Completed!\n")
	buf.WriteString(border + "\n")
	writeRow(&buf, center("Question", questionWidth), "User Answer", "Correct Answer", "Result")
	buf.WriteString(border + "\n")
	for _, rec := range session.Results {
		writeRow(&buf, FitCell(rec.QuestionText, questionWidth), givenCell(rec), rec.CorrectOption, resultCell(rec))
	}
	buf.WriteString(border + "\n")
	fmt.Fprintf(&buf, "Your final score: %d/%d\n", session.Score, total)
	fmt.Fprintf(&buf, "Thank you for playing, %s! We hope you enjoyed the quiz.\n", session.PlayerName)

	_, err := w.Write(buf.Bytes())
	return err
}

func writeRow(buf *bytes.Buffer, question, given, correct, result string) {
	fmt.Fprintf(buf, "| %s | %s | %s | %s |\n",
		FitCell(question, questionWidth),
		FitCell(given, givenWidth),
		FitCell(correct, correctWidth),
		FitCell(result, resultWidth),
	)
}

// FitCell truncates text longer than width with "..." or right-pads it with spaces.
func FitCell(text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return text + strings.Repeat(" ", width-len(runes))
}

func center(text string, width int) string {
	pad := width - len([]rune(text))
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}

func givenCell(rec domain.AnswerRecord) string {
	if rec.Skipped() {
		return skippedMarker
	}
	return rec.GivenOption
}

func resultCell(rec domain.AnswerRecord) string {
	switch {
	case rec.Outcome == domain.OutcomeCaptureError:
		return "Error"
	case rec.IsCorrect:
		return "Correct"
	default:
		return "Incorrect"
	}
}
