package domain

import "time"

type ChangeOp string

const (
	ChangeCreated ChangeOp = "created"
	ChangeUpdated ChangeOp = "updated"
)

// ChangeEvent announces a successful write.
type ChangeEvent struct {
	Kind   string    `json:"kind"`
	Op     ChangeOp  `json:"op"`
	ID     string    `json:"id"`
	RootID string    `json:"rootId"`
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
}
