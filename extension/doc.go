// Package extension is the contract between a host and its plugin modules.
//
// A module exposes an Entrypoint. The host calls its Setup method once,
// passing a Registrar through which the module registers implementations
// for the capabilities the host has exposed:
//
//	type plugin struct{}
//
//	func (plugin) Setup(r extension.Registrar) error {
//	    return extension.Register[demo.HelpPrinter, *FancyHelpPrinter](r)
//	}
//
//	func Entrypoint() extension.Entrypoint { return plugin{} }
//
// Registration is policed by the host: capabilities it never exposed are
// rejected with ErrUndefinedCapability, and single-implementation
// capabilities that are already satisfied are rejected with
// ErrCapabilityAlreadySatisfied.
package extension
