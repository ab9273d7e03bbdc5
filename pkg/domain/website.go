package domain

// Website is the remote site identity established by a successful license
// activation. It is immutable once created; exactly one instance exists for
// the lifetime of an activated gateway client.
type Website struct {
	// ID is the opaque website identifier used in API paths.
	ID string `json:"id"`
	// Name is the human-readable website name.
	Name string `json:"name"`
	// URL is the public website URL. It may be empty; when non-empty it is
	// sent as the Origin header on gateway requests.
	URL string `json:"url"`
}
