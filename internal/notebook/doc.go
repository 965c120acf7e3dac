// Package notebook holds the fixed Jupyter notebook document written for
// every new notebook, along with a JSON Schema check (nbformat v4 subset)
// and a format version check for that document.
package notebook
