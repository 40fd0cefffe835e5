// Package vacuumv1 declares the vacuum.v1.Vacuum gRPC service spoken between the
// daemon and its clients over the per-user UNIX socket.
//
// Messages are plain Go structs carried by the JSON codec in codec.go; Ping uses
// protobuf well-known types, which the codec encodes with protojson.
package vacuumv1

// Candidate is one cleanable application as seen by clients.
type Candidate struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Selected bool   `json:"selected"`
	Safe     bool   `json:"safe"`
}

func (c *Candidate) GetId() string {
	if c == nil {
		return ""
	}
	return c.Id
}

func (c *Candidate) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

type ListRequest struct {
	// Filter narrows by case-insensitive name substring.
	Filter string `json:"filter,omitempty"`
	// IncludeSafe keeps safe-listed candidates (the settings view shows them).
	IncludeSafe bool `json:"include_safe,omitempty"`
}

type ListResponse struct {
	Candidates    []*Candidate `json:"candidates"`
	SelectedCount int32        `json:"selected_count"`
	AllSelected   bool         `json:"all_selected"`
	Total         int32        `json:"total"`
}

func (r *ListResponse) GetCandidates() []*Candidate {
	if r == nil {
		return nil
	}
	return r.Candidates
}

func (r *ListResponse) GetSelectedCount() int32 {
	if r == nil {
		return 0
	}
	return r.SelectedCount
}

type ToggleRequest struct {
	Id string `json:"id"`
}

type ToggleResponse struct {
	Selected bool `json:"selected"`
}

type SelectAllRequest struct {
	Value bool `json:"value"`
}

type SelectAllResponse struct {
	SelectedCount int32 `json:"selected_count"`
}

type RefreshRequest struct{}

type RefreshResponse struct {
	Total int32 `json:"total"`
}

type CleanRequest struct{}

type CleanResponse struct {
	Terminated int32 `json:"terminated"`
}

func (r *CleanResponse) GetTerminated() int32 {
	if r == nil {
		return 0
	}
	return r.Terminated
}

type ToggleSafeRequest struct {
	Id string `json:"id"`
}

type ToggleSafeResponse struct {
	Safe bool `json:"safe"`
}

type SafeListRequest struct{}

type SafeListResponse struct {
	Ids []string `json:"ids"`
}

type LoginRequest struct {
	// Set applies Enabled; otherwise the call only reports the current state.
	Set     bool `json:"set,omitempty"`
	Enabled bool `json:"enabled,omitempty"`
}

type LoginResponse struct {
	Enabled bool `json:"enabled"`
}

type WatchRequest struct{}

// WatchEvent signals that the candidate list changed. Seq increases per event.
type WatchEvent struct {
	Seq uint64 `json:"seq"`
}
