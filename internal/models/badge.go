package models

// Badge is a one-time achievement marker. A given badge id is held at
// most once; re-awarding is a no-op.
type Badge struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
