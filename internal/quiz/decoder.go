// Package quiz decodes uploaded test-definition artifacts into ordered
// question sets. The decoder is pure: it reads the bytes it is given and
// touches no storage.
package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// AnswersPerQuestion is fixed by the artifact format: every line carries
// exactly four answer columns.
const AnswersPerQuestion = 4

// fieldsPerLine is question text, four answers, correct index, image ref.
const fieldsPerLine = 7

type Answer struct {
	Text    string
	IsRight bool
}

type Question struct {
	Text string
	// Answers holds AnswersPerQuestion entries in artifact column order.
	// Exactly one has IsRight set.
	Answers []Answer
	// ImageRef is passed through from the artifact unchanged; may be empty.
	ImageRef string
}

// DecodeError reports the first malformed line of an artifact. Line is
// 1-based and counts non-empty lines the way question numbering does.
type DecodeError struct {
	Line   int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed test definition at line %d: %s", e.Line, e.Reason)
}

// Decode parses a semicolon-delimited test definition:
//
//	questionText;answer1;answer2;answer3;answer4;correctIndex;imageRef
//
// one question per line, correctIndex 1-based in [1,4]. Empty lines are
// skipped. Any malformed line fails the whole batch; callers never see a
// partial question set. Output order is input order.
func Decode(r io.Reader) ([]Question, error) {
	var questions []Question

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		line++

		fields := strings.Split(text, ";")
		if len(fields) < fieldsPerLine {
			return nil, &DecodeError{Line: line, Reason: fmt.Sprintf("expected at least %d fields, got %d", fieldsPerLine, len(fields))}
		}

		correct, err := strconv.Atoi(strings.TrimSpace(fields[5]))
		if err != nil {
			return nil, &DecodeError{Line: line, Reason: fmt.Sprintf("correct answer index %q is not an integer", fields[5])}
		}
		if correct < 1 || correct > AnswersPerQuestion {
			return nil, &DecodeError{Line: line, Reason: fmt.Sprintf("correct answer index %d outside [1,%d]", correct, AnswersPerQuestion)}
		}

		answers := make([]Answer, AnswersPerQuestion)
		for i := 0; i < AnswersPerQuestion; i++ {
			answers[i] = Answer{
				Text:    fields[1+i],
				IsRight: correct == i+1,
			}
		}

		questions = append(questions, Question{
			Text:     fields[0],
			Answers:  answers,
			ImageRef: fields[6],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading test definition: %w", err)
	}

	return questions, nil
}

// CountQuestions returns the number of non-empty lines, which is the
// question count of a well-formed artifact. It does not validate field
// layout; Decode does.
func CountQuestions(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading test definition: %w", err)
	}
	return count, nil
}
