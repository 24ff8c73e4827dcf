package intake

import (
	"outreach-engine/internal/core/domain"
)

const (
	ReasonDuplicateEmail = "duplicate email"
	ReasonDuplicatePlace = "duplicate name and location"
)

// Index remembers contacts already known to the system. Leads with an
// email are matched on the normalised address; leads without one fall
// back to the normalised company name and location pair.
type Index struct {
	emails map[string]struct{}
	places map[string]struct{}
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		emails: make(map[string]struct{}),
		places: make(map[string]struct{}),
	}
}

// PlaceKey builds the name+location comparison key. It is empty when
// either part is missing.
func PlaceKey(name, location string) string {
	n, l := NormalizeCompany(name), NormalizeLocation(location)
	if n == "" || l == "" {
		return ""
	}
	return n + "|" + l
}

// AddEmail records a known address.
func (x *Index) AddEmail(email string) {
	if e := NormalizeEmail(email); e != "" {
		x.emails[e] = struct{}{}
	}
}

// AddPlace records a known name and location pair.
func (x *Index) AddPlace(name, location string) {
	if k := PlaceKey(name, location); k != "" {
		x.places[k] = struct{}{}
	}
}

// Add records every key of raw so later leads in the same batch match it.
func (x *Index) Add(raw domain.RawLead) {
	x.AddEmail(raw.Email)
	x.AddPlace(raw.AgencyName, raw.Location)
}

// Check reports whether raw duplicates a known contact and why. It never
// fails; sparse leads simply do not match.
func (x *Index) Check(raw domain.RawLead) (bool, string) {
	if e := NormalizeEmail(raw.Email); e != "" {
		if _, ok := x.emails[e]; ok {
			return true, ReasonDuplicateEmail
		}
		return false, ""
	}
	if k := PlaceKey(raw.AgencyName, raw.Location); k != "" {
		if _, ok := x.places[k]; ok {
			return true, ReasonDuplicatePlace
		}
	}
	return false, ""
}

// Len returns the number of indexed keys.
func (x *Index) Len() int { return len(x.emails) + len(x.places) }
