package models

// SyncState holds the fields every synced entity shares regardless of kind.
type SyncState struct {
	ID         int64  `json:"id"`
	EndpointID int64  `json:"endpointId"`
	RemoteID   string `json:"remoteId"`
	OutOfSync  bool   `json:"outOfSync"`
}

// State returns the receiver. Kinds embed SyncState so that a pointer to any
// entity satisfies [Entity].
func (s *SyncState) State() *SyncState {
	return s
}

// Entity is the local, persisted shape of a synced entity.
type Entity interface {
	State() *SyncState
}

// Payload is the wire shape of an entity as exchanged with the remote
// connector. Identifier returns the remote identifier ("@id").
type Payload interface {
	Identifier() string
}

// Synced is a local entity as returned by sync operations: its sync
// bookkeeping plus the wire projection of its local values.
type Synced[D Payload] struct {
	ID         int64 `json:"id"`
	EndpointID int64 `json:"endpointId"`
	OutOfSync  bool  `json:"outOfSync"`
	Data       D     `json:"data"`
}
