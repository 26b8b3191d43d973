package service

import "errors"

var (
	ErrNotFound         = errors.New("todo not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrQuestionRequired = errors.New("question is required")
	ErrStoreNil         = errors.New("todo store is nil")
	ErrAssistantNil     = errors.New("assistant is nil")
	ErrPoolNil          = errors.New("worker pool is nil")
)
