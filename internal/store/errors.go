package store

import "errors"

var errClosed = errors.New("store is closed")
