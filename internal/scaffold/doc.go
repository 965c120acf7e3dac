// Package scaffold creates projects, tasks and notebooks under the configured
// base directory. It powers the "project", "task" and "notebook" commands.
//
// Each operation is a fixed sequence of filesystem and external-tool steps.
// Progress is written as each step succeeds, so when a step fails the caller
// can see exactly how far scaffolding got. Nothing is rolled back.
package scaffold
