// Package cli builds the cobra command tree of the expandr demo host. It
// translates flags into the application's configuration and maps failures
// onto process exit codes.
package cli
