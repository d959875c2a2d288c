package status

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/schema"
)

const ListLimit = 1000

type StatusCheck struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientName string    `gorm:"type:text;not null" json:"client_name"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
}

// TableName resolves to "status_checks", prefixed with the configured schema.
func (StatusCheck) TableName(namer schema.Namer) string {
	return namer.TableName("StatusCheck")
}

type CreateStatusCheckDTO struct {
	ClientName *string `json:"client_name"`
}
