package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain pdf", in: "Lecture 1.pdf", want: "Lecture 1"},
		{name: "upper case extension", in: "Notes.PDF", want: "Notes"},
		{name: "with directory", in: "/home/student/docs/Exam.pdf", want: "Exam"},
		{name: "non pdf extension kept", in: "draft.txt", want: "draft.txt"},
		{name: "no extension", in: "syllabus", want: "syllabus"},
		{name: "only extension", in: ".pdf", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "surrounding spaces", in: "  Slides .pdf ", want: "Slides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromFileName(tt.in))
		})
	}
}

func TestFile_IsPDF(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/pdf", true},
		{"APPLICATION/PDF", true},
		{"application/pdf; charset=binary", true},
		{"image/png", false},
		{"", false},
		{"application/pdfx", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, File{ContentType: tt.contentType}.IsPDF())
		})
	}
}

func TestIsValidSemester(t *testing.T) {
	for _, s := range ValidSemesters {
		assert.True(t, IsValidSemester(s), s)
	}
	for _, s := range []string{"", "0", "9", "01", " 1", "one"} {
		assert.False(t, IsValidSemester(s), s)
	}
}

func TestViewState_SelectedSubject(t *testing.T) {
	v := ViewState{
		Selection: SelectionState{SelectedSemester: "1", SelectedSubjectID: "b"},
		Subjects:  []Subject{{ID: "a"}, {ID: "b", Name: "Physics"}},
	}

	s, ok := v.SelectedSubject()
	assert.True(t, ok)
	assert.Equal(t, "Physics", s.Name)

	v.Selection.SelectedSubjectID = ""
	_, ok = v.SelectedSubject()
	assert.False(t, ok)
}
