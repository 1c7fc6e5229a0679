// Package interests discovers staff profile pages on an institutional
// directory page and extracts a short research-interests statement from
// each profile, producing one row per discovered profile.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package interests

// CandidateLink is a URL believed to reference a profile page.
// Duplicate hrefs on the directory page yield duplicate links.
type CandidateLink struct {
	URL        string
	SourcePage string
}

// ExtractionResult is the outcome of extracting research interests from a
// single profile. An empty ResearchInterests means nothing was found.
type ExtractionResult struct {
	ProfileURL        string `json:"profileUrl"`
	ResearchInterests string `json:"researchInterests"`
}

// Found reports whether a research-interests statement was extracted.
func (r ExtractionResult) Found() bool {
	return r.ResearchInterests != ""
}
