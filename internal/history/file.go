package history

import (
	"io"
	"strings"
)

// FileConnector appends one comma-led line per record, each field bracketed
// by commas.
type FileConnector struct {
	w io.Writer
}

func NewFileConnector(w io.Writer) *FileConnector {
	return &FileConnector{w: w}
}

func (c *FileConnector) Persist(row []string) error {
	var b strings.Builder
	for _, field := range row {
		b.WriteByte(',')
		b.WriteString(field)
	}
	b.WriteByte(',')
	b.WriteByte('\n')
	_, err := io.WriteString(c.w, b.String())
	return err
}
