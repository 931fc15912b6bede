// Package processor wires configuration into the translation pipeline and
// handles the CLI-facing operations: single sentence translation, batch
// pre-warming and listing cached records.
package processor
