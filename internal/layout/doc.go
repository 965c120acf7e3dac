// Package layout describes the on-disk shape of projects, tasks and
// notebooks under the base directory, and resolves names into paths while
// checking that every ancestor already exists.
package layout
