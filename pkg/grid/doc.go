// Package grid models power components and the links between them.
//
// # Overview
//
// A [Component] is a battery, a solar array, or any other kind described by
// an [Attributes] payload. Components are joined by links carrying a
// [LinkConfig]: a [Direction] and a power rating in watts. Each component
// holds its own ordered registry of links, and every logical connection is
// recorded on both ends.
//
// # Mirrored Registries
//
// [Connect] writes two entries for one connection. The initiator records the
// configuration as given; the target records it with the direction inverted:
//
//	initiator: (target,    {SourceToTarget, 200})
//	target:    (initiator, {TargetToSource, 200})
//
// [BothWays] is symmetric and appears unchanged on both sides. Power is never
// altered. Connecting a component to itself fails with [ErrSelfConnection].
// Registries are append-only and keep insertion order, which renderers rely on.
//
// # Networks
//
// [Network] collects components by unique name, connects them by name, keeps
// a log of logical connections and can re-check the mirrored invariant with
// [Network.Validate]. It serializes mutation with a single lock.
//
// # Logging
//
// A [Connector] reports every connection to an injected charmbracelet logger
// at debug level: "connecting X to Y" for the initiator, then "accepting
// connection from X to Y" for the target. The lines keep that order even
// though the target's registry entry is written first. The package-level
// [Connect] uses a connector that discards output.
package grid
