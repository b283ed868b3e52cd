package broker

import "errors"

var ErrDisabled = errors.New("event broker is disabled")
