// Package store persists processed complaints for the history view.
package store

import (
	"context"

	"github.com/equicourt/complaint-cli/internal/model"
)

// HistoryFilter specifies criteria for listing complaints.
type HistoryFilter struct {
	Category model.Category `json:"category,omitempty"`
	Limit    int            `json:"limit,omitempty"`
	Offset   int            `json:"offset,omitempty"`
}

// Store defines the persistence interface for complaint history.
// Listings are most-recent-first.
type Store interface {
	SaveComplaint(ctx context.Context, text string, lang model.LanguageCode, env *model.Envelope) (*model.Complaint, error)
	GetComplaint(ctx context.Context, id string) (*model.Complaint, error)
	ListComplaints(ctx context.Context, filter HistoryFilter) ([]model.Complaint, error)

	// Trim deletes everything beyond the keep most recent complaints and
	// reports how many rows it removed.
	Trim(ctx context.Context, keep int) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}
