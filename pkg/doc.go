// Package pkg provides the libraries behind archdiagram.
//
// # Overview
//
// archdiagram describes an architecture diagram in Go code and renders it
// with Graphviz. The pkg directory is organized as:
//
//  1. [diagram] - Node kinds, clusters, edge chains, DOT emission and rendering
//  2. [architecture] - The CC3 AWS Connect high level architecture diagram
//  3. [config] - Optional TOML/YAML render overrides
//  4. [io] - JSON/YAML snapshots of a declared diagram
//  5. [errors], [observability], [buildinfo] - Shared plumbing
//
// # Data Flow
//
//	build func (nodes, clusters, chains)
//	         ↓
//	    [diagram.Diagram] (in-memory model, first error recorded)
//	         ↓
//	    DOT source (deterministic IDs, sorted attributes)
//	         ↓
//	    Graphviz (in-process) → svg/png/jpg, written atomically
//
// # Quick Start
//
//	path, err := diagram.Render(ctx, diagram.Options{Name: "Web"},
//	    func(d *diagram.Diagram) error {
//	        api := d.Node(diagram.KindAPIGateway, "api")
//	        d.Chain(api).Forward(d.Node(diagram.KindLambda, "handler"))
//	        return nil
//	    })
//
// [diagram]: https://pkg.go.dev/github.com/ccu3/archdiagram/pkg/diagram
// [diagram.Diagram]: https://pkg.go.dev/github.com/ccu3/archdiagram/pkg/diagram#Diagram
// [architecture]: https://pkg.go.dev/github.com/ccu3/archdiagram/pkg/architecture
// [config]: https://pkg.go.dev/github.com/ccu3/archdiagram/pkg/config
// [io]: https://pkg.go.dev/github.com/ccu3/archdiagram/pkg/io
// [errors]: https://pkg.go.dev/github.com/ccu3/archdiagram/pkg/errors
// [observability]: https://pkg.go.dev/github.com/ccu3/archdiagram/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/ccu3/archdiagram/pkg/buildinfo
package pkg
