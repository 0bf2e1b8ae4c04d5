package quiz

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode_TwoQuestionArtifact(t *testing.T) {
	artifact := "2+2?;3;4;5;6;2;\ncap?;paris;rome;berlin;madrid;1;\n"

	questions, err := Decode(strings.NewReader(artifact))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q1 := questions[0]
	if q1.Text != "2+2?" {
		t.Errorf("question 1 text = %q, want %q", q1.Text, "2+2?")
	}
	if !q1.Answers[1].IsRight || q1.Answers[1].Text != "4" {
		t.Errorf("question 1 right answer = %+v, want {4 true}", q1.Answers[1])
	}

	q2 := questions[1]
	if q2.Text != "cap?" {
		t.Errorf("question 2 text = %q, want %q", q2.Text, "cap?")
	}
	if !q2.Answers[0].IsRight || q2.Answers[0].Text != "paris" {
		t.Errorf("question 2 right answer = %+v, want {paris true}", q2.Answers[0])
	}
}

func TestDecode_ExactlyOneRightAnswer(t *testing.T) {
	lines := []string{
		"q1;a;b;c;d;1;img1",
		"q2;a;b;c;d;2;",
		"q3;a;b;c;d;3;img3",
		"q4;a;b;c;d;4;",
	}
	questions, err := Decode(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(questions) != len(lines) {
		t.Fatalf("expected %d questions, got %d", len(lines), len(questions))
	}
	for i, q := range questions {
		right := 0
		rightIdx := -1
		for j, a := range q.Answers {
			if a.IsRight {
				right++
				rightIdx = j
			}
		}
		if right != 1 {
			t.Errorf("question %d has %d right answers, want exactly 1", i+1, right)
		}
		if rightIdx != i {
			t.Errorf("question %d right answer at index %d, want %d", i+1, rightIdx, i)
		}
	}
}

func TestDecode_PreservesOrderAndImageRef(t *testing.T) {
	artifact := "first;a;b;c;d;1;one.png\nsecond;a;b;c;d;1;\nthird;a;b;c;d;1;dir/three.jpg\n"
	questions, err := Decode(strings.NewReader(artifact))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	wantTexts := []string{"first", "second", "third"}
	wantImgs := []string{"one.png", "", "dir/three.jpg"}
	for i := range wantTexts {
		if questions[i].Text != wantTexts[i] {
			t.Errorf("question %d text = %q, want %q", i+1, questions[i].Text, wantTexts[i])
		}
		if questions[i].ImageRef != wantImgs[i] {
			t.Errorf("question %d image ref = %q, want %q", i+1, questions[i].ImageRef, wantImgs[i])
		}
	}
}

func TestDecode_MalformedLines(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
		wantLine int
	}{
		{name: "index zero", artifact: "q;a;b;c;d;0;", wantLine: 1},
		{name: "index five", artifact: "q;a;b;c;d;5;", wantLine: 1},
		{name: "index negative", artifact: "q;a;b;c;d;-1;", wantLine: 1},
		{name: "index not an integer", artifact: "q;a;b;c;d;two;", wantLine: 1},
		{name: "too few fields", artifact: "q;a;b;c;d;1", wantLine: 1},
		{name: "bad second line", artifact: "q;a;b;c;d;1;\nq;a;b;1", wantLine: 2},
		{name: "bad line after blank", artifact: "q;a;b;c;d;1;\n\nq;a;b;c;d;9;", wantLine: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			questions, err := Decode(strings.NewReader(tc.artifact))
			if err == nil {
				t.Fatalf("Decode succeeded with %d questions, want error", len(questions))
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("error is %T, want *DecodeError", err)
			}
			if decodeErr.Line != tc.wantLine {
				t.Errorf("error line = %d, want %d", decodeErr.Line, tc.wantLine)
			}
		})
	}
}

func TestDecode_NoPartialOutputOnFailure(t *testing.T) {
	// First line is fine, second is broken: nothing may be returned.
	artifact := "q;a;b;c;d;1;\nbroken"
	questions, err := Decode(strings.NewReader(artifact))
	if err == nil {
		t.Fatal("expected error")
	}
	if questions != nil {
		t.Errorf("got partial question set of %d, want nil", len(questions))
	}
}

func TestDecode_SkipsEmptyLines(t *testing.T) {
	artifact := "q1;a;b;c;d;1;\n\nq2;a;b;c;d;2;\n\n\n"
	questions, err := Decode(strings.NewReader(artifact))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(questions))
	}
}

func TestDecode_ExtraFieldsIgnored(t *testing.T) {
	artifact := "q;a;b;c;d;3;img;spare;fields"
	questions, err := Decode(strings.NewReader(artifact))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if questions[0].ImageRef != "img" {
		t.Errorf("image ref = %q, want %q", questions[0].ImageRef, "img")
	}
	if !questions[0].Answers[2].IsRight {
		t.Error("answer 3 should be right")
	}
}

func TestDecode_WindowsLineEndings(t *testing.T) {
	artifact := "q1;a;b;c;d;1;\r\nq2;a;b;c;d;2;x.png\r\n"
	questions, err := Decode(strings.NewReader(artifact))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[1].ImageRef != "x.png" {
		t.Errorf("image ref = %q, want %q (CR must be stripped)", questions[1].ImageRef, "x.png")
	}
}

func TestCountQuestions(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
		want     int
	}{
		{name: "empty", artifact: "", want: 0},
		{name: "single line no newline", artifact: "q;a;b;c;d;1;", want: 1},
		{name: "two lines trailing newline", artifact: "x\ny\n", want: 2},
		{name: "blank lines skipped", artifact: "x\n\ny\n\n", want: 2},
		{name: "whitespace only line skipped", artifact: "x\n   \ny", want: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CountQuestions(strings.NewReader(tc.artifact))
			if err != nil {
				t.Fatalf("CountQuestions returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("CountQuestions = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCountMatchesDecode(t *testing.T) {
	artifact := "q1;a;b;c;d;1;\nq2;a;b;c;d;2;\n\nq3;a;b;c;d;3;\n"
	n, err := CountQuestions(strings.NewReader(artifact))
	if err != nil {
		t.Fatalf("CountQuestions returned error: %v", err)
	}
	questions, err := Decode(strings.NewReader(artifact))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if n != len(questions) {
		t.Errorf("CountQuestions = %d but Decode produced %d questions", n, len(questions))
	}
}
