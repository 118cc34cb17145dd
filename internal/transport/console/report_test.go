package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"console-quiz/internal/domain"
)

func TestFitCell(t *testing.T) {
	tests := []struct {
		text   string
		width  int
		expect string
	}{
		{text: "abc", width: 6, expect: "abc   "},
		{text: "abcdef", width: 6, expect: "abcdef"},
		{text: "abcdefghij", width: 8, expect: "abcde..."},
		{text: "héllo wörld", width: 8, expect: "héllo..."},
	}
	for _, tt := range tests {
		if got := FitCell(tt.text, tt.width); got != tt.expect {
			t.Fatalf("FitCell(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.expect)
		}
	}
}

func TestRenderReport(t *testing.T) {
	long := domain.Question{Prompt: strings.Repeat("x", 60), Options: []string{"a", "b"}, Correct: "A"}
	short := domain.Question{Prompt: "What is 2 + 2?", Options: []string{"3", "4"}, Correct: "B"}

	session := domain.NewSession("s1", "Ann", time.Unix(0, 0))
	session = session.Record(short.Grade("b"))
	session = session.Record(long.Unanswered(domain.OutcomeTimedOut))
	session = session.Record(short.Unanswered(domain.OutcomeCaptureError))
	session = session.Record(short.Grade("A"))

	var buf bytes.Buffer
	if err := RenderReport(&buf, session, 4); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")

	if lines[1] != "Quiz Completed!" {
		t.Fatalf("unexpected heading %q", lines[1])
	}
	if lines[2] != border || lines[4] != border || lines[9] != border {
		t.Fatalf("borders misplaced:\n%s", buf.String())
	}
	expectRows := []string{
		"| " + FitCell("What is 2 + 2?", 48) + " | " + FitCell("B", 13) + " | " + FitCell("B", 14) + " | " + FitCell("Correct", 12) + " |",
		"| " + strings.Repeat("x", 45) + "..." + " | " + FitCell("Skipped", 13) + " | " + FitCell("A", 14) + " | " + FitCell("Incorrect", 12) + " |",
		"| " + FitCell("What is 2 + 2?", 48) + " | " + FitCell("Skipped", 13) + " | " + FitCell("B", 14) + " | " + FitCell("Error", 12) + " |",
		"| " + FitCell("What is 2 + 2?", 48) + " | " + FitCell("A", 13) + " | " + FitCell("B", 14) + " | " + FitCell("Incorrect", 12) + " |",
	}
	for i, want := range expectRows {
		if lines[5+i] != want {
			t.Fatalf("row %d:\n got %q\nwant %q", i, lines[5+i], want)
		}
	}
	if lines[10] != "Your final score: 1/4" {
		t.Fatalf("unexpected score line %q", lines[10])
	}
	if lines[11] != "Thank you for playing, Ann! We hope you enjoyed the quiz." {
		t.Fatalf("unexpected farewell %q", lines[11])
	}
	if len(lines[3]) != len(border) {
		t.Fatalf("header width %d does not match border %d", len(lines[3]), len(border))
	}
}

func TestRenderReportIsDeterministic(t *testing.T) {
	q := domain.Question{Prompt: "Pick", Options: []string{"a", "b"}, Correct: "A"}
	session := domain.NewSession("s1", "Ann", time.Unix(0, 0)).Record(q.Grade("a"))

	var first, second bytes.Buffer
	_ = RenderReport(&first, session, 1)
	_ = RenderReport(&second, session, 1)
	if first.String() != second.String() {
		t.Fatalf("report output differs between renders")
	}
}
