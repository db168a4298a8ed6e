// Package commands implements the upset CLI. Each subcommand reads chart
// definitions (YAML or JSON) and reports on stderr through a zap logger.
package commands
