package upload

import "errors"

var (
	ErrNoFile        = errors.New("no image file uploaded")
	ErrNotAnImage    = errors.New("only image files are allowed")
	ErrFileTooLarge  = errors.New("file exceeds maximum allowed size")
	ErrImageNotFound = errors.New("uploaded image not found")
)
