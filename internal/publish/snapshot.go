package publish

import (
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/wardleygo/internal/links"
	"github.com/specialistvlad/wardleygo/internal/model"
)

// Snapshot is the payload of one published revision.
type Snapshot struct {
	Revision   string            `json:"revision"`
	Path       string            `json:"path"`
	Title      string            `json:"title"`
	Map        *model.WardleyMap `json:"map"`
	Links      links.Result      `json:"links"`
	Errors     int               `json:"errors"`
	Unresolved int               `json:"unresolved"`
	Time       time.Time         `json:"time"`
}

// NewSnapshot builds the payload for path. Every call gets a new revision.
func NewSnapshot(path string, m *model.WardleyMap, result links.Result) Snapshot {
	return Snapshot{
		Revision:   uuid.New().String(),
		Path:       path,
		Title:      m.Title,
		Map:        m,
		Links:      result,
		Errors:     len(m.Errors),
		Unresolved: len(result.Unresolved()),
		Time:       time.Now().UTC(),
	}
}
