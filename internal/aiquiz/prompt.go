package aiquiz

import (
	"fmt"

	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

const systemPrompt = `
You are an expert quiz generator. You write educational quiz questions about the topic and in the question format requested by the user.

Output rules:
1. Respond with valid JSON only.
2. Do not use markdown and do not wrap the answer in code blocks.
3. Use double quotes for every string.
4. Escape every string correctly so the whole answer parses as JSON.

Use exactly one of the following shapes, depending on the requested question type.

mcq (one correct answer, "correct" is the index of the right option):
{
  "questions": [
    {
      "id": 1,
      "question": "Question text?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct": 0,
      "explanation": "Why this option is right"
    }
  ]
}

multichoice (several correct answers, "correct" lists their indexes):
{
  "questions": [
    {
      "id": 1,
      "question": "Question text? (Select all that apply)",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct": [0, 2],
      "explanation": "Why these options are right"
    }
  ]
}

fillblanks ("blanks" lists the missing words in order of appearance):
{
  "questions": [
    {
      "id": 1,
      "question": "Sentence with _____ and _____ missing.",
      "blanks": ["first", "second"],
      "template": "Sentence with _____ and _____ missing.",
      "explanation": "Short explanation"
    }
  ]
}

match ("correct" maps every left id to the right id it matches):
{
  "questions": [
    {
      "id": 1,
      "question": "Match the following items:",
      "leftColumn": [
        {"id": "item1", "text": "Left item 1"},
        {"id": "item2", "text": "Left item 2"}
      ],
      "rightColumn": [
        {"id": "match1", "text": "Right item 1"},
        {"id": "match2", "text": "Right item 2"}
      ],
      "correct": {"item1": "match1", "item2": "match2"},
      "explanation": "Short explanation"
    }
  ]
}

Questions must be challenging but fair, educational and relevant to the topic.
`

var typeDescriptions = map[quiz.QuestionType]string{
	quiz.TypeMCQ:         "multiple choice questions with 4 options and only one correct answer",
	quiz.TypeMultiChoice: "multiple choice questions with 4 options where multiple answers can be correct",
	quiz.TypeFillBlanks:  "fill in the blanks questions with 1-3 blanks per question",
	quiz.TypeMatch:       "matching questions where items from left column match with right column items",
}

func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt expects a request that already passed validation.
func BuildUserPrompt(req GenerateQuizRequest) string {
	return fmt.Sprintf(
		"Generate %d %s about the topic: %s\n\n"+
			"Topic: %s\n"+
			"Question Type: %s\n"+
			"Number of Questions: %d\n\n"+
			"Generate educational, challenging questions that test understanding of %s.\n"+
			"Return ONLY valid JSON following the exact format specified in your instructions.",
		req.NumQuestions, typeDescriptions[req.QuestionType], req.Topic,
		req.Topic,
		req.QuestionType,
		req.NumQuestions,
		req.Topic,
	)
}
