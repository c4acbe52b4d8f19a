package html2md

import (
	"errors"

	"github.com/alnah/go-html2md/internal/extract"
)

// Sentinel errors for library operations.
var (
	ErrEmptyHTML = errors.New("HTML content cannot be empty")
	ErrParse     = errors.New("reading HTML failed")
	ErrPreview   = errors.New("preview rendering failed")
	ErrExtract   = errors.New("content extraction failed")
	ErrInternal  = errors.New("internal error")

	// Options validation errors.
	ErrInvalidBullet    = errors.New("invalid bullet character")
	ErrInvalidDelimiter = errors.New("invalid emphasis delimiter")
	ErrInvalidLinkStyle = errors.New("invalid link style")

	// Registry errors.
	ErrEmptyTagName = errors.New("tag name cannot be empty")
	ErrNilRule      = errors.New("rule cannot be nil")

	// Extraction errors, matched with errors.Is on Convert results.
	ErrInvalidSelector  = extract.ErrInvalidSelector
	ErrSelectorNotFound = extract.ErrSelectorNotFound

	// Context side-channel errors.
	ErrValueType = errors.New("context value has unexpected type")
)
