package domain

// Event is one inbound unit delivered by the outer dispatcher. The core only
// requires a stable user identifier and enough content for matchers to test
// against; everything else about the transport stays opaque.
type Event interface {
	// UserID identifies the conversation partner. All session state is keyed
	// by this value.
	UserID() string

	// Text returns the textual content of the event ("" for pure media).
	Text() string
}

// Attachable is implemented by events that may carry a rich-media item.
// Matchers that route on media kind check for this capability.
type Attachable interface {
	Attachment() *Attachment
}

// Attachment describes a rich-media item carried by an inbound event.
type Attachment struct {
	Kind MediaKind `json:"kind"`
	Ref  string    `json:"ref"`
}

// Message is the plain Event implementation used by adapters and tests.
type Message struct {
	User  string      `json:"user_id"`
	Body  string      `json:"text"`
	Media *Attachment `json:"attachment,omitempty"`

	// CorrelationID is assigned by ingress adapters for log correlation.
	// The core never reads it.
	CorrelationID string `json:"correlation_id,omitempty"`
}

func (m Message) UserID() string { return m.User }

func (m Message) Text() string { return m.Body }

func (m Message) Attachment() *Attachment { return m.Media }
