// Package cli provides command-line interface setup and configuration
// for the kotoba application. It handles flag parsing, command creation,
// and configuration management using cobra and viper.
package cli
