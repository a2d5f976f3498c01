package nn

import "github.com/pkg/errors"

// ErrNoForward is returned by Module.Call when no forward computation is installed.
var ErrNoForward = errors.New("no forward function installed")
