// Package roomodes assembles parsed mode documents into the .roomodes
// configuration file consumed by the host agent platform.
//
// The package owns everything after per-document parsing: discovering
// candidate files, isolating per-file failures, rejecting slug
// collisions, sorting entries by display name, and atomically writing
// the serialized config. Per-file problems never abort a run; only an
// unreadable modes directory or an unwritable output file is fatal.
package roomodes
