// Package config assembles, validates, and exposes the process-wide settings
// tree for the kbmcp service.
//
// Configuration values come from environment variables and optional CLI
// flags, merged in priority order (first source wins for non-zero fields):
//  1. CLI flags
//  2. Environment variables
//  3. Declared defaults
//
// The main entry point is [Load], which constructs every setting group,
// validates each group's local invariants exactly once, and returns the
// immutable [Settings] aggregate. Construction failures abort startup; the
// settings tree is never partially valid.
//
// Secret-bearing fields use the [Secret] type, which redacts itself in every
// textual or serialized rendering; plaintext is reachable only through
// [Secret.Reveal], and the connection views reveal it only at the moment a
// consumer view is built.
package config
