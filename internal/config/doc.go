// Package config resolves user-level settings. The project base directory is
// read from the PROJ_BASEDIR environment variable (or ~/.tsukuru/config.yaml
// when present) and handed to the rest of the CLI as an explicit Config value.
package config
