package backup

import (
	"github.com/directpro/directpro-api/internal/recents"
	"github.com/directpro/directpro-api/internal/templates"
)

// Document is the single export/import unit: both stores, wholesale.
// An exported document must import back losslessly.
type Document struct {
	Recents   []recents.Contact    `json:"recents"`
	Templates []templates.Template `json:"templates"`
}
