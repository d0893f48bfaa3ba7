// Package runner defines the Runner capability used for every external
// process the installer starts, and the Exec implementation that spawns real
// processes. Tests substitute a scripted Runner to observe which commands
// would have run.
package runner
