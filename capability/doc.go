// Package capability describes what a host exposes to plugin modules.
//
// A Descriptor says how to produce an instance (by type, by factory, or a
// pre-built instance). A Definition says how long instances live, whether
// several implementations may coexist, and which descriptors act as
// defaults. The Registry maps capability IDs to their Definition and is
// filled by the host before any module loads.
package capability
