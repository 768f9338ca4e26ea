package app

import (
	"github.com/specialistvlad/expandr/host"
	"github.com/specialistvlad/expandr/modules/envvars"
	"github.com/specialistvlad/expandr/modules/fancyhelp"
)

// coreModules is the list of modules compiled into the expandr binary.
// They go through the same load pipeline as discovered ones.
var coreModules = []host.Module{
	envvars.Module,
	fancyhelp.Module,
}
