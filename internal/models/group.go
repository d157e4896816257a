package models

// Group is a named chat group. Membership is fixed at creation time;
// the creator is always present in Members.
type Group struct {
	Creator   string   `json:"creator"`
	Members   []string `json:"members"`
	CreatedAt string   `json:"created_at"`
}
