package whatsapp

// InboundEvent is the top-level webhook delivery from the Cloud API. Missing
// keys at any depth decode to zero values; structural absence is decided by the
// First* helpers, never by a decode failure.
type InboundEvent struct {
	// Object identifies the subscribed object type (e.g. "whatsapp_business_account").
	Object string `json:"object"`
	// Entry lists the business account entries carried by this delivery.
	Entry []Entry `json:"entry"`
}

// Entry represents one business account entry.
type Entry struct {
	// ID is the business account id.
	ID string `json:"id"`
	// Changes lists the change notifications for this entry.
	Changes []Change `json:"changes"`
}

// Change wraps a single change notification.
type Change struct {
	// Field names the changed field (e.g. "messages").
	Field string `json:"field"`
	// Value holds the message or status data.
	Value ChangeValue `json:"value"`
}

// ChangeValue holds the delivered messages or status updates. The two lists are
// mutually exclusive per event in practice, though the provider does not
// guarantee it.
type ChangeValue struct {
	// MessagingProduct is always "whatsapp" for Cloud API deliveries.
	MessagingProduct string `json:"messaging_product"`
	// Metadata describes the receiving phone number.
	Metadata Metadata `json:"metadata"`
	// Contacts lists the senders' profiles.
	Contacts []Contact `json:"contacts,omitempty"`
	// Messages lists inbound user messages.
	Messages []Message `json:"messages,omitempty"`
	// Statuses lists delivery status updates for earlier outbound messages.
	Statuses []StatusEvent `json:"statuses,omitempty"`
}

// Metadata describes the phone number the event was delivered to.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// Contact is the profile of a message sender.
type Contact struct {
	Profile ContactProfile `json:"profile"`
	WaID    string         `json:"wa_id"`
}

// ContactProfile carries the sender's display name.
type ContactProfile struct {
	Name string `json:"name"`
}

// Message is one inbound user message.
type Message struct {
	// From is the opaque sender id.
	From string `json:"from"`
	// ID is the provider-assigned message id.
	ID string `json:"id"`
	// Timestamp is the provider delivery timestamp, as a string.
	Timestamp string `json:"timestamp"`
	// Type is the message type; only "text" messages carry a Text body.
	Type string `json:"type"`
	// Text holds the message body for text messages.
	Text *TextContent `json:"text,omitempty"`
}

// TextContent holds a text message body.
type TextContent struct {
	Body string `json:"body"`
}

// StatusEvent is a delivery status update for an earlier outbound message.
// Status events are logged and never acted upon.
type StatusEvent struct {
	// ID is the id of the outbound message the status refers to.
	ID string `json:"id"`
	// Status is the delivery state (sent, delivered, read, failed, ...).
	Status string `json:"status"`
	// Timestamp is the provider timestamp, as a string.
	Timestamp string `json:"timestamp"`
	// RecipientID is the user the outbound message was addressed to.
	RecipientID string `json:"recipient_id"`
}

// FirstMessage returns the first message of the first change of the first
// entry. Only element zero of each list is consulted; multiple entries,
// changes, or messages in one delivery are not aggregated.
func (e *InboundEvent) FirstMessage() (Message, bool) {
	if len(e.Entry) == 0 || len(e.Entry[0].Changes) == 0 {
		return Message{}, false
	}
	messages := e.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return Message{}, false
	}
	return messages[0], true
}

// FirstStatus returns the first status event of the first change of the first
// entry.
func (e *InboundEvent) FirstStatus() (StatusEvent, bool) {
	if len(e.Entry) == 0 || len(e.Entry[0].Changes) == 0 {
		return StatusEvent{}, false
	}
	statuses := e.Entry[0].Changes[0].Value.Statuses
	if len(statuses) == 0 {
		return StatusEvent{}, false
	}
	return statuses[0], true
}

// TextBody returns the text body of the message, or an empty string for
// non-text messages.
func (m Message) TextBody() string {
	if m.Text == nil {
		return ""
	}
	return m.Text.Body
}
