package models

// TimestampLayout is the wire and storage format for all timestamps,
// local time at second granularity.
const TimestampLayout = "2006-01-02 15:04:05"

// Message is one entry in the append-only message log. Exactly one of
// Recipient (direct message) or Group (group message) is set.
type Message struct {
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Recipient string `json:"recipient,omitempty"`
	Group     string `json:"group,omitempty"`
}
