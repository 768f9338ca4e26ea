// Package hcl provides the HCL implementation of config.Loader. Files are
// parsed with hclparse, decoded with gohcl and evaluated against a context
// exposing the process environment as the `env` object.
package hcl
