package profiles

import "errors"

var (
	// ErrNotFound indicates the requested student profile does not exist.
	ErrNotFound = errors.New("student profile not found")
	// ErrNoResumeText indicates extraction was requested before any resume
	// text was stored for the profile.
	ErrNoResumeText = errors.New("no resume text stored for profile")
	// ErrNotPDF indicates an upload with a non-PDF extension.
	ErrNotPDF = errors.New("only PDF files are accepted")
	// ErrFileTooLarge indicates an upload over the size cap.
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	// ErrEmptyText indicates a PDF from which no text could be extracted.
	ErrEmptyText = errors.New("could not extract text from PDF")
)
