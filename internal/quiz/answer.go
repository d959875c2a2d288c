package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Answer is the "correct" field of a question. Its shape depends on the quiz
// type: an option index for mcq, a list of indexes for multichoice, a
// left-id to right-id mapping for match. Fill-in-the-blanks questions carry
// no answer and serialize as null.
type Answer struct {
	kind    QuestionType
	index   int
	indices []int
	pairs   map[string]string
}

func SingleAnswer(index int) Answer {
	return Answer{kind: TypeMCQ, index: index}
}

func MultipleAnswer(indices []int) Answer {
	if indices == nil {
		indices = []int{}
	}
	return Answer{kind: TypeMultiChoice, indices: indices}
}

func MatchAnswer(pairs map[string]string) Answer {
	if pairs == nil {
		pairs = map[string]string{}
	}
	return Answer{kind: TypeMatch, pairs: pairs}
}

// Kind reports which variant is set, or "" when the answer is absent.
func (a Answer) Kind() QuestionType {
	return a.kind
}

func (a Answer) IsZero() bool {
	return a.kind == ""
}

func (a Answer) Index() (int, bool) {
	return a.index, a.kind == TypeMCQ
}

func (a Answer) Indices() ([]int, bool) {
	return a.indices, a.kind == TypeMultiChoice
}

func (a Answer) Pairs() (map[string]string, bool) {
	return a.pairs, a.kind == TypeMatch
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case TypeMCQ:
		return json.Marshal(a.index)
	case TypeMultiChoice:
		return json.Marshal(a.indices)
	case TypeMatch:
		return json.Marshal(a.pairs)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	switch data[0] {
	case '[':
		var indices []int
		if err := json.Unmarshal(data, &indices); err != nil {
			return fmt.Errorf("answer: expected list of option indexes: %w", err)
		}
		*a = MultipleAnswer(indices)
	case '{':
		var pairs map[string]string
		if err := json.Unmarshal(data, &pairs); err != nil {
			return fmt.Errorf("answer: expected mapping of column ids: %w", err)
		}
		*a = MatchAnswer(pairs)
	default:
		var index int
		if err := json.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("answer: expected option index: %w", err)
		}
		*a = SingleAnswer(index)
	}
	return nil
}
