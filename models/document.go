// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path/filepath"
	"strings"
	"time"
)

// ContentTypePDF is the only MIME type accepted for uploads.
const ContentTypePDF = "application/pdf"

// Document is the metadata record of an uploaded PDF. The content itself is
// opaque and only referenced through FileURL.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	SubjectID  string    `json:"subject_id"`
	UploadDate time.Time `json:"upload_date"`
	FileURL    string    `json:"file_url"`
	OwnerID    int64     `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// DocumentFilter narrows a document listing.
type DocumentFilter struct {
	OwnerID   int64
	SubjectID string
}

// File is an upload candidate: a named blob with a declared content type.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// IsPDF reports whether the declared content type is application/pdf.
// Parameters such as "; charset=binary" are ignored.
func (f File) IsPDF() bool {
	ct, _, _ := strings.Cut(f.ContentType, ";")
	return strings.EqualFold(strings.TrimSpace(ct), ContentTypePDF)
}

// TitleFromFileName derives a default document title from a file name:
// directory and a trailing ".pdf" (any case) are dropped.
func TitleFromFileName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".pdf") {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.TrimSpace(base)
}
