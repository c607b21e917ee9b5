package types

import "errors"

var (
	ErrNoInputSource      = errors.New("no transaction source configured. Provide --input or set it in the config file")
	ErrNoAdminRecipient   = errors.New("no administrator recipient configured for unassigned transactions")
	ErrUnknownPeriod      = errors.New("unknown reporting period: expected 'previous-month' or 'current-month'")
	ErrMalformedRow       = errors.New("malformed transaction row")
	ErrNoRecipientAddress = errors.New("recipient has no usable contact address")
	ErrUnknownIdentity    = errors.New("identity not found in directory")
)
