package main

// Exit codes returned by the authorlist CLI.
const (
	ExitSuccess     = 0 // Success (warnings such as unmatched infrastructure authors still exit 0)
	ExitError       = 1 // General error (invalid arguments, write failure)
	ExitConfigError = 2 // Configuration error (missing input or list files, unreadable config)
	ExitDataError   = 3 // Data error (malformed table, unresolved first-tier author)
)
