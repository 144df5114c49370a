// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// DefaultSemester is selected when nothing has been persisted yet.
const DefaultSemester = "1"

// ValidSemesters lists every semester a subject can belong to, in display order.
var ValidSemesters = []string{"1", "2", "3", "4", "5", "6", "7", "8"}

// IsValidSemester reports whether s is one of [ValidSemesters].
func IsValidSemester(s string) bool {
	return slices.Contains(ValidSemesters, s)
}

// Subject is a named grouping of study documents, scoped to one semester and
// one owner.
type Subject struct {
	// ID is assigned by the server (UUIDv7) and never reused.
	ID string `json:"id"`

	// Name is the display name, trimmed and non-empty.
	Name string `json:"name"`

	// IsPublic marks the subject as shareable. Stored and returned as-is.
	IsPublic bool `json:"is_public"`

	// Semester is one of [ValidSemesters].
	Semester string `json:"semester"`

	// OwnerID is the user the subject belongs to.
	OwnerID int64 `json:"owner_id"`

	// CreatedAt defines the listing order inside a semester.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Subject model.
func (s Subject) TableName() string {
	return "subjects"
}

// SubjectFilter narrows a subject listing.
type SubjectFilter struct {
	OwnerID  int64
	Semester string
}
