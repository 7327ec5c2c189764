package main

import (
	"io"
	"os"
	"time"

	webshot "github.com/alnah/go-webshot"
)

// Environment holds injectable dependencies for testability.
// NewEngine lets tests substitute a fake browser engine.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	NewEngine func(webshot.EngineOptions) webshot.Engine
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		NewEngine: webshot.NewRodEngine,
	}
}
