package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrNilCollection          = errors.New("collection cannot be nil")
	ErrNilKeyFunc             = errors.New("model key function cannot be nil")
)
