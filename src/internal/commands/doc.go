// Package commands implements CLI command handlers for zlog.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and prepare configuration
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - demo: Print every kind of line the engine produces
//   - config: Print the effective configuration as TOML
//   - check-config: Validate a configuration file
//
// # Example Usage
//
//	ctx := &commands.AppContext{ConfigPath: "/etc/zlog.toml"}
//	cmd := commands.CreateCheckConfigCommand()
//	if err := cmd.Init(nil, ctx); err != nil {
//	    return err
//	}
//	return cmd.Run()
package commands
