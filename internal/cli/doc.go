// Package cli defines the Cobra command tree for the tsukuru CLI. Each file
// in this package registers one top-level command (project, task, notebook,
// config) with the root command. Commands only parse flags and arguments and
// delegate the scaffolding itself to the scaffold package.
package cli
