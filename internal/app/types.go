package app

import "vacuum/api/vacuumv1"

// Candidate mirrors one entry of the daemon's candidate list.
type Candidate struct {
	ID       string
	Name     string
	Icon     string
	Selected bool
	Safe     bool
}

func candidateFromProto(c *vacuumv1.Candidate) Candidate {
	return Candidate{
		ID:       c.GetId(),
		Name:     c.GetName(),
		Icon:     c.Icon,
		Selected: c.Selected,
		Safe:     c.Safe,
	}
}

// View is one rendering of the candidate list plus its aggregate counters.
type View struct {
	Candidates    []Candidate
	SelectedCount int
	AllSelected   bool
	// Total counts every candidate, including safe-listed and filtered ones.
	Total int
}

func viewFromProto(resp *vacuumv1.ListResponse) View {
	view := View{
		Candidates:    make([]Candidate, 0, len(resp.GetCandidates())),
		SelectedCount: int(resp.GetSelectedCount()),
		AllSelected:   resp.AllSelected,
		Total:         int(resp.Total),
	}
	for _, c := range resp.GetCandidates() {
		view.Candidates = append(view.Candidates, candidateFromProto(c))
	}
	return view
}

// ListFilters narrows the candidate list.
type ListFilters struct {
	// Search matches names case-insensitively and is sent as typed; empty matches everything.
	Search string
	// IncludeSafe keeps safe-listed candidates in the result.
	IncludeSafe bool
}

func (f ListFilters) buildRequest() *vacuumv1.ListRequest {
	return &vacuumv1.ListRequest{
		Filter:      f.Search,
		IncludeSafe: f.IncludeSafe,
	}
}
