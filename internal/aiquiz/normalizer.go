package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

type NormalizeOptions struct {
	// Strict also checks answers against the options and columns they refer to.
	Strict bool
}

type rawQuestion map[string]json.RawMessage

type rawPayload struct {
	Questions []rawQuestion `json:"questions"`
}

// StripCodeFence removes one leading ```json marker and one trailing ```
// marker. Fences elsewhere in the text are left alone.
func StripCodeFence(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// Normalize turns the model output into questions of type t, numbered from 1
// in the order they were produced. An empty list is not an error.
func Normalize(raw string, t quiz.QuestionType, opts NormalizeOptions) ([]quiz.Question, error) {
	clean := StripCodeFence(raw)

	if !json.Valid([]byte(clean)) {
		return nil, &ParseError{Detail: detailInvalidJSON, Err: errors.New("response is not valid JSON")}
	}

	var payload rawPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, &ParseError{Detail: detailBadContent, Err: err}
	}

	questions := make([]quiz.Question, 0, len(payload.Questions))
	for i, item := range payload.Questions {
		q, err := normalizeQuestion(item, i+1, t, opts.Strict)
		if err != nil {
			return nil, &ParseError{Detail: detailBadContent, Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
		if opts.Strict {
			if err := checkStrict(q, t); err != nil {
				return nil, &ParseError{Detail: detailBadContent, Err: fmt.Errorf("question %d: %w", i+1, err)}
			}
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func normalizeQuestion(item rawQuestion, id int, t quiz.QuestionType, strict bool) (quiz.Question, error) {
	if item == nil {
		return quiz.Question{}, errors.New("not an object")
	}

	q := quiz.Question{ID: id}

	var err error
	if q.Question, err = field[string](item, "question"); err != nil {
		return q, err
	}
	if q.Explanation, err = optionalField[string](item, "explanation"); err != nil {
		return q, err
	}

	switch t {
	case quiz.TypeMCQ:
		if q.Options, err = field[[]string](item, "options"); err != nil {
			return q, err
		}
		if q.Correct, err = answerField(item, t, strict); err != nil {
			return q, err
		}

	case quiz.TypeMultiChoice:
		if q.Options, err = field[[]string](item, "options"); err != nil {
			return q, err
		}
		if q.Correct, err = answerField(item, t, strict); err != nil {
			return q, err
		}

	case quiz.TypeFillBlanks:
		if q.Blanks, err = field[[]string](item, "blanks"); err != nil {
			return q, err
		}
		template, err := field[string](item, "template")
		if err != nil {
			return q, err
		}
		q.Template = &template

	case quiz.TypeMatch:
		if q.LeftColumn, err = field[[]quiz.ColumnItem](item, "leftColumn"); err != nil {
			return q, err
		}
		if q.RightColumn, err = field[[]quiz.ColumnItem](item, "rightColumn"); err != nil {
			return q, err
		}
		if q.Correct, err = answerField(item, t, strict); err != nil {
			return q, err
		}

	default:
		return q, fmt.Errorf("unsupported question type %q", t)
	}

	return q, nil
}

// answerField reads "correct". Strict mode requires the shape of type t.
// Otherwise any answer shape is kept, and a lone index or a one-element list
// is converted to the shape t expects.
func answerField(item rawQuestion, t quiz.QuestionType, strict bool) (quiz.Answer, error) {
	if strict {
		switch t {
		case quiz.TypeMCQ:
			index, err := field[int](item, "correct")
			return quiz.SingleAnswer(index), err
		case quiz.TypeMultiChoice:
			indices, err := field[[]int](item, "correct")
			return quiz.MultipleAnswer(indices), err
		default:
			pairs, err := field[map[string]string](item, "correct")
			return quiz.MatchAnswer(pairs), err
		}
	}

	answer, err := field[quiz.Answer](item, "correct")
	if err != nil {
		return answer, err
	}

	switch t {
	case quiz.TypeMCQ:
		if indices, ok := answer.Indices(); ok && len(indices) == 1 {
			return quiz.SingleAnswer(indices[0]), nil
		}
	case quiz.TypeMultiChoice:
		if index, ok := answer.Index(); ok {
			return quiz.MultipleAnswer([]int{index}), nil
		}
	}
	return answer, nil
}

func field[T any](item rawQuestion, key string) (T, error) {
	var v T
	raw, ok := item[key]
	if !ok || string(raw) == "null" {
		return v, fmt.Errorf("missing %q", key)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("invalid %q: %w", key, err)
	}
	return v, nil
}

func optionalField[T any](item rawQuestion, key string) (T, error) {
	var v T
	raw, ok := item[key]
	if !ok || string(raw) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("invalid %q: %w", key, err)
	}
	return v, nil
}

func checkStrict(q quiz.Question, t quiz.QuestionType) error {
	switch t {
	case quiz.TypeMCQ:
		index, _ := q.Correct.Index()
		if index < 0 || index >= len(q.Options) {
			return fmt.Errorf("correct index %d outside %d options", index, len(q.Options))
		}

	case quiz.TypeMultiChoice:
		indices, _ := q.Correct.Indices()
		if len(indices) == 0 {
			return errors.New("no correct options")
		}
		for _, index := range indices {
			if index < 0 || index >= len(q.Options) {
				return fmt.Errorf("correct index %d outside %d options", index, len(q.Options))
			}
		}

	case quiz.TypeFillBlanks:
		if len(q.Blanks) == 0 {
			return errors.New("no blanks")
		}

	case quiz.TypeMatch:
		if len(q.LeftColumn) != len(q.RightColumn) {
			return fmt.Errorf("left column has %d items, right column has %d", len(q.LeftColumn), len(q.RightColumn))
		}
		left := columnIDs(q.LeftColumn)
		right := columnIDs(q.RightColumn)
		pairs, _ := q.Correct.Pairs()
		for l, r := range pairs {
			if !left[l] {
				return fmt.Errorf("unknown left item %q", l)
			}
			if !right[r] {
				return fmt.Errorf("unknown right item %q", r)
			}
		}
	}
	return nil
}

func columnIDs(items []quiz.ColumnItem) map[string]bool {
	ids := make(map[string]bool, len(items))
	for _, it := range items {
		ids[it.ID] = true
	}
	return ids
}
