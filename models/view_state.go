package models

// SelectionState is what the user is currently looking at. An empty
// SelectedSubjectID means no subject is selected.
type SelectionState struct {
	SelectedSemester  string `json:"selected_semester"`
	SelectedSubjectID string `json:"selected_subject_id,omitempty"`
}

// HasSubject reports whether a subject is selected.
func (s SelectionState) HasSubject() bool {
	return s.SelectedSubjectID != ""
}

// ViewState is a point-in-time copy of the dashboard state handed to the
// presentation layer. Slices are owned by the receiver.
type ViewState struct {
	Selection        SelectionState
	Subjects         []Subject
	Documents        []Document
	LoadingSubjects  bool
	LoadingDocuments bool
}

// SelectedSubject returns the cached subject matching the selection.
func (v ViewState) SelectedSubject() (Subject, bool) {
	for _, s := range v.Subjects {
		if s.ID == v.Selection.SelectedSubjectID {
			return s, true
		}
	}
	return Subject{}, false
}
