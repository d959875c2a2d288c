package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm/schema"
)

type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeMultiChoice QuestionType = "multichoice"
	TypeFillBlanks  QuestionType = "fillblanks"
	TypeMatch       QuestionType = "match"
)

var AllQuestionTypes = []QuestionType{
	TypeMCQ,
	TypeMultiChoice,
	TypeFillBlanks,
	TypeMatch,
}

func (t QuestionType) IsValid() bool {
	for _, v := range AllQuestionTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Quiz struct {
	ID             uuid.UUID    `json:"id"`
	Title          string       `json:"title"`
	Type           QuestionType `json:"type"`
	Questions      []Question   `json:"questions"`
	TotalQuestions int          `json:"totalQuestions"`
}

// Question carries only the fields relevant to its quiz type; the others stay
// nil and are written as JSON null.
type Question struct {
	ID          int          `json:"id"`
	Question    string       `json:"question"`
	Options     []string     `json:"options"`
	Correct     Answer       `json:"correct"`
	Blanks      []string     `json:"blanks"`
	Template    *string      `json:"template"`
	LeftColumn  []ColumnItem `json:"leftColumn"`
	RightColumn []ColumnItem `json:"rightColumn"`
	Explanation string       `json:"explanation"`
}

type ColumnItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// New builds a quiz from already normalized questions.
func New(topic string, t QuestionType, questions []Question) *Quiz {
	return &Quiz{
		ID:             uuid.New(),
		Title:          topic + " Quiz",
		Type:           t,
		Questions:      questions,
		TotalQuestions: len(questions),
	}
}

// quizRecord is the row persisted by the gorm repository.
type quizRecord struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title          string         `gorm:"type:text;not null"`
	Type           string         `gorm:"type:text;not null"`
	Questions      datatypes.JSON `gorm:"type:jsonb;not null"`
	TotalQuestions int            `gorm:"not null;default:0"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

// TableName resolves to "quizzes", prefixed with the configured schema.
func (quizRecord) TableName(namer schema.Namer) string {
	return namer.TableName("Quiz")
}
