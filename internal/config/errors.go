package config

import "errors"

var ErrMissingNodeID = errors.New("missing node id")
var ErrMissingListenAddr = errors.New("missing listen address")
var ErrInvalidMaxDrift = errors.New("max drift must be a positive duration")
