// Package cli implements the command-line interface for vcal-notify.
//
// The root command takes a single mode argument (today, tomorrow or week),
// loads configuration from the environment and an optional .env file, runs
// one notification pipeline, and prints a short summary of what happened.
package cli
