package cart

import "time"

type MessageKind string

const (
	Advisory MessageKind = "advisory"
	Success  MessageKind = "success"
)

// Message is a transient notice shown after a cart action.
type Message struct {
	Kind         MessageKind
	Text         string
	DismissAfter time.Duration
}

var (
	EmptyCart   = Message{Kind: Advisory, Text: "Your cart is empty.", DismissAfter: 2 * time.Second}
	OrderPlaced = Message{Kind: Success, Text: "Thank you for your order!", DismissAfter: 3 * time.Second}
)
