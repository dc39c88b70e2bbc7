package camfour

import (
	"github.com/icco/gutil/logging"
)

const (
	// Service is the name of this service.
	Service = "camfour"
)

var (
	log = logging.Must(logging.NewLogger(Service))
)
