// Package app contains the expandr demo host. It exposes the demo
// capabilities, loads compiled-in and discovered modules, and dispatches
// commands, decoupled from any specific entrypoint like a CLI.
//
// Compiled-in and discovered modules are loaded as one batch, so a plugin
// file sorting before "fancyhelp" gets the first chance at single
// capabilities such as demo.HelpPrinter.
package app
