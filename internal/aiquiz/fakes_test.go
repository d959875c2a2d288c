package aiquiz_test

import (
	"context"
	"sync"

	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

type fakeProvider struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
	system   string
	user     string
}

func (p *fakeProvider) SendPrompt(_ context.Context, system, user string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.system = system
	p.user = user
	return p.response, p.err
}

func (p *fakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeRepo struct {
	mu      sync.Mutex
	err     error
	created []*quiz.Quiz
}

func (r *fakeRepo) Create(_ context.Context, q *quiz.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, q)
	return nil
}

const mcqPayload = `{
  "questions": [
    {"id": 7, "question": "Which pigment absorbs light?", "options": ["Chlorophyll", "Keratin", "Melanin", "Hemoglobin"], "correct": 0, "explanation": "Chlorophyll captures light energy."},
    {"id": 8, "question": "Where does photosynthesis happen?", "options": ["Mitochondria", "Chloroplast", "Nucleus", "Ribosome"], "correct": 1, "explanation": "In the chloroplast."},
    {"id": 9, "question": "Which gas is released?", "options": ["CO2", "N2", "O2", "H2"], "correct": 2}
  ]
}`

const multichoicePayload = `{
  "questions": [
    {"question": "Which are reactants? (Select all that apply)", "options": ["Water", "Glucose", "Carbon dioxide", "Oxygen"], "correct": [0, 2], "explanation": "Water and CO2 go in."}
  ]
}`

const fillBlanksPayload = `{
  "questions": [
    {"question": "Plants convert _____ into _____.", "blanks": ["light", "chemical energy"], "template": "Plants convert _____ into _____.", "explanation": "Energy conversion."}
  ]
}`

const matchPayload = `{
  "questions": [
    {
      "question": "Match the following items:",
      "leftColumn": [{"id": "item1", "text": "Stomata"}, {"id": "item2", "text": "Xylem"}],
      "rightColumn": [{"id": "match1", "text": "Gas exchange"}, {"id": "match2", "text": "Water transport"}],
      "correct": {"item1": "match1", "item2": "match2"},
      "explanation": "Leaf anatomy."
    }
  ]
}`
