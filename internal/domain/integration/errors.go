package integration

import "errors"

var ErrIntegrationNotFound = errors.New("clinic integration not found")
