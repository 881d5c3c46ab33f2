package model

import "fmt"

// TransportKind categorises how a personal vehicle moves: over ground,
// water or air. It is a closed enum; unlike an order's status it never
// changes over an entity's lifetime.
type TransportKind int

const (
	// UnknownTransport catches uninitialised TransportKind values.
	UnknownTransport TransportKind = iota

	// Ground covers trucks, cars and bikes.
	Ground

	// Naval covers ships and boats.
	Naval

	// Aerial covers drones and planes.
	Aerial
)

func transportKindStrings() map[TransportKind]string {
	return map[TransportKind]string{
		Ground: "Ground",
		Naval:  "Naval",
		Aerial: "Aerial",
	}
}

// TransportKinds returns the names of all valid transport kinds.
func TransportKinds() []string {
	return []string{Ground.String(), Naval.String(), Aerial.String()}
}

// String returns the kind's name, or "Unknown" for invalid values.
func (k TransportKind) String() string {
	if s, ok := transportKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Validate returns an error when the kind is not one of the declared values.
func (k TransportKind) Validate() error {
	if _, ok := transportKindStrings()[k]; !ok {
		return fmt.Errorf("transport kind is invalid: %d", int(k))
	}
	return nil
}

// TransportKindFromString parses a kind name produced by String.
func TransportKindFromString(s string) (TransportKind, error) {
	for kind, name := range transportKindStrings() {
		if name == s {
			return kind, nil
		}
	}
	return UnknownTransport, fmt.Errorf("transport kind is invalid: %q", s)
}
