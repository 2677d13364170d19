package domain

import "time"

// EventKind is the kind of an engagement event.
type EventKind string

// Engagement event kinds. Views are recorded on successful catalog
// loads; the click kinds accompany their matching call-to-action.
const (
	KindViews           EventKind = "views"
	KindCallClicks      EventKind = "call_clicks"
	KindWhatsAppClicks  EventKind = "whatsapp_clicks"
	KindDirectionClicks EventKind = "direction_clicks"
)

// EventKinds lists every valid kind, for validation and iteration.
var EventKinds = []EventKind{KindViews, KindCallClicks, KindWhatsAppClicks, KindDirectionClicks}

// IsValid reports whether k is a recognized event kind.
func (k EventKind) IsValid() bool {
	switch k {
	case KindViews, KindCallClicks, KindWhatsAppClicks, KindDirectionClicks:
		return true
	default:
		return false
	}
}

// EngagementEvent is the atomic, immutable record of visitor engagement.
// Events are append-only - counters derive from them.
type EngagementEvent struct {
	ID        string    `json:"id"`
	CatalogID string    `json:"catalog_id"`
	Kind      EventKind `json:"kind"`
	VisitorID string    `json:"visitor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EngagementCounters is the materialized per-catalog view over engagement
// events. Counters are monotonically non-decreasing and are created
// implicitly on the first event; nothing in the viewer resets them.
type EngagementCounters struct {
	CatalogID       string    `json:"catalog_id"`
	Views           int64     `json:"views"`
	CallClicks      int64     `json:"call_clicks"`
	WhatsAppClicks  int64     `json:"whatsapp_clicks"`
	DirectionClicks int64     `json:"direction_clicks"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Apply increments the counter for the given kind. Unknown kinds are
// ignored rather than failing; the write path validates kinds upstream.
func (c *EngagementCounters) Apply(kind EventKind) {
	switch kind {
	case KindViews:
		c.Views++
	case KindCallClicks:
		c.CallClicks++
	case KindWhatsAppClicks:
		c.WhatsAppClicks++
	case KindDirectionClicks:
		c.DirectionClicks++
	}
	c.UpdatedAt = time.Now()
}

// Count returns the counter value for the given kind.
func (c *EngagementCounters) Count(kind EventKind) int64 {
	switch kind {
	case KindViews:
		return c.Views
	case KindCallClicks:
		return c.CallClicks
	case KindWhatsAppClicks:
		return c.WhatsAppClicks
	case KindDirectionClicks:
		return c.DirectionClicks
	default:
		return 0
	}
}
