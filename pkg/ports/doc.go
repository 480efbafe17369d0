/*
Package ports defines the driven ports (interfaces) for the Rotary engine.

These interfaces decouple the core cipher logic from external
implementations, allowing the engine to source its rotor catalog from
various backends (YAML files, in-memory definitions, test doubles).

# Key Interfaces

  - CatalogLoader: responsible for loading the rotor catalog and machine geometry.
*/
package ports
