package domains

import "errors"

// ErrUnknownDomain is returned when a configured domain name is not part of
// the closed domain set.
var ErrUnknownDomain = errors.New("unknown domain")

// ErrDuplicateDomain is returned when a domain name appears twice in the
// configured selection.
var ErrDuplicateDomain = errors.New("domain selected twice")
