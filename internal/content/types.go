// Package content implements the client for the remote GraphQL content API.
package content

// DeviceSummary is a lightweight device record returned by search.
type DeviceSummary struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Device is a full device record. BodyHTML is the raw article markup and the
// source of truth for specifications; it may be malformed or empty.
// A Device is immutable once fetched.
type Device struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl,omitempty"`
	BodyHTML string `json:"-"`
}

// Summary returns the lightweight view of the device.
func (d *Device) Summary() DeviceSummary {
	return DeviceSummary{
		ID:       d.ID,
		Slug:     d.Slug,
		Title:    d.Title,
		ImageURL: d.ImageURL,
	}
}
