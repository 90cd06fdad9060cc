// Package reg1test implements the REG1TEST (EDI) contest log sections and the
// lookup tables that map ADIF band and mode values onto them.
package reg1test
