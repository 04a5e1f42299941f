package models

// Goal is a long-running objective tasks can link to.
type Goal struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}
