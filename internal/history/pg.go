package history

import (
	"strings"
	"time"

	"main/pkg/conn"
)

// Record is one persisted historical row. Kind names the pipeline stage the
// row came from; Fields carries the rendered row as comma-joined text.
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"index"`
	Fields    string
	CreatedAt time.Time
}

func (Record) TableName() string {
	return "history_records"
}

// PGConnector writes records into Postgres through a shared client.
type PGConnector struct {
	client *conn.Client
	kind   string
}

func NewPGConnector(client *conn.Client, kind string) (*PGConnector, error) {
	if err := client.DB().AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &PGConnector{client: client, kind: kind}, nil
}

func (c *PGConnector) Persist(row []string) error {
	return c.client.DB().Create(&Record{
		Kind:   c.kind,
		Fields: strings.Join(row, ","),
	}).Error
}
