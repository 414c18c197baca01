package fantasydata

import "time"

const (
	defaultBaseURL      = "http://api.nfldata.apiphany.com"
	defaultHTTPTimeout  = 10 * time.Second
	defaultSubscription = SubscriptionDeveloper
	defaultFormat       = FormatJSON

	keyParam     = "key"
	redactedKey  = "REDACTED"
	errorBodyCap = 512
)
