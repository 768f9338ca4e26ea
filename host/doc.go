// Package host drives plugin loading for an application.
//
// A host builds an Engine over its container.Collection, exposes the
// capabilities modules may implement, loads modules in name order, and
// finally applies defaults for whatever the modules left unsatisfied:
//
//	services := container.NewCollection()
//	engine, err := host.Setup(ctx, services, func(ctx context.Context, e *host.Engine) error {
//	    if err := host.ExposeSingleton[demo.HelpPrinter](e, capability.Type[*demo.PlainHelpPrinter]()); err != nil {
//	        return err
//	    }
//	    _, err := e.LoadPath(ctx, "plugins", nil)
//	    return err
//	})
//
// Every module goes through the same state machine: a loading event that
// may skip it, entry-point resolution, and Setup. Failures of one module are
// reported through LoadOptions.Callbacks and never stop the batch unless the
// OnError callback returns an error.
package host
