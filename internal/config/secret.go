// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the kbmcp authors

package config

// secretPlaceholder is what every textual rendering of a populated Secret
// produces instead of the plaintext.
const secretPlaceholder = "**********"

// Secret is a string whose value never appears in logs, dumps, or any
// serialized form of the settings tree. Formatting a Secret through fmt,
// encoding it as text, or marshaling it to JSON yields a fixed placeholder;
// the plaintext is reachable only through [Secret.Reveal].
//
// Callers must not retain the revealed plaintext beyond the immediate use.
type Secret string

// IsSet reports whether the secret holds a non-empty value.
func (s Secret) IsSet() bool {
	return s != ""
}

// Reveal returns the underlying plaintext. This is the only accessor that
// exposes the secret value.
func (s Secret) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer. A populated secret renders as the
// placeholder; an empty secret renders as the empty string.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return secretPlaceholder
}

// GoString implements fmt.GoStringer so %#v does not leak the plaintext.
func (s Secret) GoString() string {
	return "config.Secret(" + s.String() + ")"
}

// MarshalText implements encoding.TextMarshaler. It also covers JSON
// encoding, so a marshaled settings tree carries the placeholder.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; the env population
// layer uses it to fill secret fields from raw variable values.
func (s *Secret) UnmarshalText(text []byte) error {
	*s = Secret(text)
	return nil
}
