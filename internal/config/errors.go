package config

import "errors"

var (
	// ErrConfigNotFound is returned when no config file exists in the start
	// directory or any of its parents
	ErrConfigNotFound = errors.New("no rustgen config found")
	// ErrConfigExists is returned by Save when it would overwrite a file
	ErrConfigExists = errors.New("config file already exists")
)
