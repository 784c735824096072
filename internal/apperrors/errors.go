package apperrors

import "fmt"

// ErrInvalidURL is returned when a URL string cannot be parsed into an
// absolute URL. It is raised before any network call is attempted.
type ErrInvalidURL struct {
	URL string
}

// Error implements the error interface.
func (e *ErrInvalidURL) Error() string {
	return fmt.Sprintf("invalid URL: %q", e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidURL) Is(target error) bool {
	_, ok := target.(*ErrInvalidURL)
	return ok
}

// NewInvalidURLError creates a new ErrInvalidURL.
func NewInvalidURLError(url string) *ErrInvalidURL {
	return &ErrInvalidURL{URL: url}
}

// ErrUnauthorized is returned when the API answers 401 or 403.
// The client sends no credentials, so this means reachable-but-denied.
type ErrUnauthorized struct {
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("unauthorized: server returned status %d", e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnauthorized) Is(target error) bool {
	_, ok := target.(*ErrUnauthorized)
	return ok
}

// NewUnauthorizedError creates a new ErrUnauthorized.
func NewUnauthorizedError(statusCode int) *ErrUnauthorized {
	return &ErrUnauthorized{StatusCode: statusCode}
}

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// ErrRequestFailed is returned for any non-2xx status that is not covered
// by a more specific error kind.
type ErrRequestFailed struct {
	StatusCode int
}

// Error implements the error interface.
func (e *ErrRequestFailed) Error() string {
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrRequestFailed) Is(target error) bool {
	_, ok := target.(*ErrRequestFailed)
	return ok
}

// NewRequestFailedError creates a new ErrRequestFailed.
func NewRequestFailedError(statusCode int) *ErrRequestFailed {
	return &ErrRequestFailed{StatusCode: statusCode}
}

// ErrNetwork wraps a transport-level failure (DNS, timeout, connection
// reset) that prevented a response from being received at all.
type ErrNetwork struct {
	Err error
}

// Error implements the error interface.
func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrNetwork) Is(target error) bool {
	_, ok := target.(*ErrNetwork)
	return ok
}

// Unwrap returns the underlying transport error.
func (e *ErrNetwork) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new ErrNetwork wrapping cause.
func NewNetworkError(cause error) *ErrNetwork {
	return &ErrNetwork{Err: cause}
}

// ErrDecoding wraps any JSON decode failure. All decode failures collapse
// to this single kind; there is no partial or best-effort decode.
type ErrDecoding struct {
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *ErrDecoding) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Resource, e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrDecoding) Is(target error) bool {
	_, ok := target.(*ErrDecoding)
	return ok
}

// Unwrap returns the underlying decode error.
func (e *ErrDecoding) Unwrap() error {
	return e.Err
}

// NewDecodingError creates a new ErrDecoding for the given resource.
func NewDecodingError(resource string, cause error) *ErrDecoding {
	return &ErrDecoding{Resource: resource, Err: cause}
}

// ErrEmptyImages is returned when a show has no images at all.
type ErrEmptyImages struct {
	ShowID int
}

// Error implements the error interface.
func (e *ErrEmptyImages) Error() string {
	return fmt.Sprintf("show %d has no images", e.ShowID)
}

// Is allows for error checking with errors.Is().
func (e *ErrEmptyImages) Is(target error) bool {
	_, ok := target.(*ErrEmptyImages)
	return ok
}

// NewEmptyImagesError creates a new ErrEmptyImages.
func NewEmptyImagesError(showID int) *ErrEmptyImages {
	return &ErrEmptyImages{ShowID: showID}
}

// ErrNoBackgroundImage is returned when a show has images but none of them
// is typed "background".
type ErrNoBackgroundImage struct {
	ShowID int
}

// Error implements the error interface.
func (e *ErrNoBackgroundImage) Error() string {
	return fmt.Sprintf("show %d has no background image", e.ShowID)
}

// Is allows for error checking with errors.Is().
func (e *ErrNoBackgroundImage) Is(target error) bool {
	_, ok := target.(*ErrNoBackgroundImage)
	return ok
}

// NewNoBackgroundImageError creates a new ErrNoBackgroundImage.
func NewNoBackgroundImageError(showID int) *ErrNoBackgroundImage {
	return &ErrNoBackgroundImage{ShowID: showID}
}
