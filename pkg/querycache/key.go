package querycache

import "strings"

// Key is a hierarchical cache key. A key that is a prefix of another
// covers it for bulk invalidation: invalidating ["events"] covers
// every ["events", ...] entry.
type Key []string

func NewKey(parts ...string) Key {
	return Key(parts)
}

func (k Key) String() string {
	return strings.Join(k, "/")
}

func (k Key) Child(parts ...string) Key {
	out := make(Key, 0, len(k)+len(parts))
	out = append(out, k...)
	out = append(out, parts...)
	return out
}

func (k Key) Covers(other Key) bool {
	if len(k) > len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// Domain builds the conventional sub-keys for one cache domain
// (events, registrations, certificates, user, ...).
type Domain string

func (d Domain) All() Key                { return NewKey(string(d)) }
func (d Domain) List() Key               { return NewKey(string(d), "list") }
func (d Domain) Detail(id string) Key    { return NewKey(string(d), "detail", id) }
func (d Domain) ForEvent(id string) Key  { return NewKey(string(d), "for_event", id) }
func (d Domain) Public() Key             { return NewKey(string(d), "public") }
func (d Domain) Named(name string) Key   { return NewKey(string(d), name) }
