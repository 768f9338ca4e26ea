package hcl

// fileRoot is the set of top-level blocks a configuration file may contain.
// Anything else is a decode error.
type fileRoot struct {
	Log       *logBlock       `hcl:"log,block"`
	Loader    *loaderBlock    `hcl:"loader,block"`
	Telemetry *telemetryBlock `hcl:"telemetry,block"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
	Source *bool   `hcl:"source,optional"`
}

type loaderBlock struct {
	Path            *string  `hcl:"path,optional"`
	Pattern         *string  `hcl:"pattern,optional"`
	Skip            []string `hcl:"skip,optional"`
	FailFast        *bool    `hcl:"fail_fast,optional"`
	ParallelResolve *bool    `hcl:"parallel_resolve,optional"`
}

type telemetryBlock struct {
	URL                string  `hcl:"url"`
	Namespace          *string `hcl:"namespace,optional"`
	Event              *string `hcl:"event,optional"`
	InsecureSkipVerify *bool   `hcl:"insecure_skip_verify,optional"`
}
