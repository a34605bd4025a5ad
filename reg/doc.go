// Package reg provides structured access to the Windows registry by shelling
// out to the platform registry command-line tool (reg.exe) and parsing its
// textual output into typed records.
//
// The three moving parts are:
//   - command construction: one exact argument vector per logical operation,
//   - process handling: a Runner collaborator that executes the vector and
//     reports the exit status (stderr discarded, stdout captured),
//   - output parsing: a tolerant line parser that turns captured text into
//     Location and ValueRecord values, silently skipping lines it does not
//     recognize.
//
// All entities are immutable value objects. Each operation spawns its own
// independent process and shares no state with any other, so a single Client
// is safe for concurrent use from multiple goroutines. Deadlines are the
// Runner's concern: the default runner terminates the spawned process when
// the operation's context is cancelled.
package reg
