package storage

import "errors"

var ErrCodeNotFound = errors.New("item not found in storage")
var ErrItemWithIDAlreadyExists = errors.New("item with this id already exists")
var ErrVoteAlreadyExists = errors.New("a vote for this position was already submitted")
