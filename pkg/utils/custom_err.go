package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrForbidden          = errors.New("forbidden")

	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPlaceNotFound    = errors.New("place not found")
	ErrLikeNotFound     = errors.New("liked place not found")

	ErrCategoryExists    = errors.New("category already exists")
	ErrAlreadyLiked      = errors.New("place already liked")
	ErrDuplicateFeedback = errors.New("feedback already submitted for this place")

	ErrPlaceHasNoCoordinates = errors.New("place has no coordinates")

	ErrSearchEngine  = errors.New("search engine error")
	ErrAIUnavailable = errors.New("ai service error")
	ErrMediaStorage  = errors.New("media storage error")
)
