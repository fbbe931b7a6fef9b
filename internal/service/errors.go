package service

import "errors"

// ErrHasChildren is returned when deleting a parent that still has children
// and force was not requested.
var ErrHasChildren = errors.New("entity still has children")
