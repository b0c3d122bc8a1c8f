// Package config loads the gestic configuration document and models its
// contents: process-wide gesture thresholds and the global, x11, and wayland
// trigger lists. Loading is all-or-nothing; optional fields are defaulted at
// decode time and each applied default is reported back to the caller.
package config
