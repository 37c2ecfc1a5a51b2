package models

// KindDrift summarises the sync state of one entity kind on an endpoint.
type KindDrift struct {
	Kind         string  `json:"kind"`
	Total        int     `json:"total"`
	OutOfSync    int     `json:"outOfSync"`
	OutOfSyncIDs []int64 `json:"outOfSyncIds,omitempty"`
}

// DriftReport is the result of checking every entity kind of one endpoint.
type DriftReport struct {
	EndpointID int64       `json:"endpointId"`
	Kinds      []KindDrift `json:"kinds"`
}

// InSync reports whether no entity of any kind is flagged out of sync.
func (r DriftReport) InSync() bool {
	for _, k := range r.Kinds {
		if k.OutOfSync > 0 {
			return false
		}
	}
	return true
}
