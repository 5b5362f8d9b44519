// Package vocab holds the fixed translation tables shared by both mappers:
// languages, maintenance frequencies, responsible party roles and the ISO
// codelist locations. Tables are unexported and read through functions so
// they cannot be mutated by callers.
package vocab
