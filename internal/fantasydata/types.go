package fantasydata

// Subscription is the access tier embedded as the first path segment.
type Subscription string

const (
	SubscriptionDeveloper Subscription = "developer"
	SubscriptionTrial     Subscription = "trial"
	SubscriptionStandard  Subscription = "standard"
)

// Known reports whether s is one of the tiers the service documents.
// Unknown tiers are still sent; the service answers them with its own 4xx.
func (s Subscription) Known() bool {
	switch s {
	case SubscriptionDeveloper, SubscriptionTrial, SubscriptionStandard:
		return true
	}
	return false
}

// Format is the response encoding requested in the second path segment.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Known reports whether f is a format the service serves.
func (f Format) Known() bool {
	return f == FormatJSON || f == FormatXML
}

func (f Format) contentType() string {
	if f == FormatXML {
		return "application/xml"
	}
	return "application/json"
}

// Resource names used by this client.
const (
	ResourceStandings = "Standings"
)

// DecodeMode selects how strictly typed records are decoded.
type DecodeMode int

const (
	// DecodeStrict rejects records with missing or unknown keys.
	DecodeStrict DecodeMode = iota
	// DecodeLenient rejects missing keys but tolerates fields the service added.
	DecodeLenient
)
