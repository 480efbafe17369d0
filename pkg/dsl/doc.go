/*
Package dsl provides a fluent builder for constructing rotor catalogs in
code, without a YAML file. It compiles down to the in-memory catalog loader,
so anything built here plugs into the same engine entry points as a
file-backed catalog.
*/
package dsl
