// Package config defines the observability configuration structure.
//
// Configuration is assembled by internal/infra/confloader with the
// priority Flag > Env > File > Default and verified here before the
// logging pipeline is configured from it.
package config
