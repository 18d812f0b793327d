// Package mesh builds object-space face lists for the nine primitive shapes.
//
//   - [Kind]: closed set of shape kinds
//   - [Params]: dimensions; each kind reads only its own fields
//   - [Face]: planar polygon with a base color
//   - [Build]: dispatches to one pure builder per kind
//   - [Cache]: optional memo keyed by kind and params
//
// Every solid is centered on the origin with Y up. Vertices are wound so
// that (v1-v0)×(v2-v0) points out of the solid. Face counts depend only on
// the kind, never on the dimension values.
package mesh
