// Package config defines the format-agnostic configuration model of the
// expandr demo host, along with the Loader interface concrete formats
// implement. The HCL implementation lives in internal/hcl.
package config
