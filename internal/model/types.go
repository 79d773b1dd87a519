// Package model defines shared data structures.
package model

// Config defines trial settings resolved from flags and the config file.
type Config struct {
	File     string
	Count    int
	LogFile  string
	LogLevel string
}
