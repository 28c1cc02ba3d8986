package config

import "errors"

var ErrMissingSecretKey = errors.New("auth.secret_key is required")
