// Package file persists fgdc2sb settings as <config-dir>/config.toml, with
// conversion options under [convert] and the item database location under
// [storage]. A missing file reads as the defaults.
package file
