// Command fancyhelp builds the fancyhelp module as a Go plugin:
//
//	go build -buildmode=plugin -o fancyhelp.so ./plugins/fancyhelp
package main

import (
	"github.com/specialistvlad/expandr/extension"
	"github.com/specialistvlad/expandr/modules/fancyhelp"
)

// Entrypoint is looked up by the host's default marker.
func Entrypoint() extension.Entrypoint {
	return fancyhelp.New()
}

func main() {}
