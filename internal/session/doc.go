// Package session drives the interactive calculator over a line-based
// terminal dialogue.
//
// A [Session] owns the prompt reader, the console printer, the loaded
// configuration and a logger. [Session.RunMenu] repeatedly offers the
// calculators held in its [Registry]; each selection runs one invocation
// of a calculator, and every failure inside that invocation is reported on
// the console and never ends the menu loop. End of input aborts the current
// invocation silently.
package session
