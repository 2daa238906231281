package main

// Exit codes for the celltype CLI.
const (
	ExitOK                 = 0 // Query succeeded.
	ExitInvalidArgs        = 1 // Invalid arguments or failed validation.
	ExitProviderFailure    = 2 // The hosted LLM call failed.
	ExitPersistenceFailure = 3 // The result could not be saved.
)
