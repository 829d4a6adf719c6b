// pfamdiv: a pipeline for diversifying protein-family alignments.
// Copyright (c) 2024 the pfamdiv authors.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License along with this program. If not, see
// <https://github.com/pfamtools/pfamdiv/blob/master/LICENSE.txt>.

// Package proc describes invocations of external collaborator tools as plain
// values, and executes sequences of them with pipe semantics.
//
// A Spec captures an executable name and its ordered argument list. A Chain
// is a sequence of Specs executed concurrently by the operating system, with
// each element's standard output wired to the next element's standard input.
// The caller blocks until every process in the chain has terminated, and the
// chain as a whole either succeeds or reports the first failing element.
package proc

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Spec is the description of a single external process invocation.
type Spec struct {
	Path string
	Args []string
}

// Command returns a Spec for the given executable and arguments.
func Command(path string, args ...string) Spec {
	return Spec{Path: path, Args: args}
}

func (s Spec) String() string {
	if len(s.Args) == 0 {
		return s.Path
	}
	return s.Path + " " + strings.Join(s.Args, " ")
}

// ChainError reports the first element of a chain that failed to start or
// exited with a non-zero status.
type ChainError struct {
	Spec Spec
	Err  error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%v: %v", e.Spec.Path, e.Err)
}

func (e *ChainError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status of the failing process, or -1 if the
// process never ran or was terminated by a signal.
func (e *ChainError) ExitCode() int {
	if exitErr, ok := e.Err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// Chain is an ordered sequence of process invocations connected
// stdout-to-stdin.
type Chain []Spec

// Run executes the chain. The last element's standard output is written to
// stdout; every element's standard error goes to stderr. All processes are
// started before any is waited on, so the operating system streams data
// through the chain without intermediate files. The first element that fails
// determines the returned error; a failure anywhere aborts the whole chain.
func (c Chain) Run(stdout, stderr io.Writer) error {
	if len(c) == 0 {
		return nil
	}
	cmds := make([]*exec.Cmd, len(c))
	for i, s := range c {
		cmd := exec.Command(s.Path, s.Args...)
		cmd.Stderr = stderr
		if i > 0 {
			pipe, err := cmds[i-1].StdoutPipe()
			if err != nil {
				return &ChainError{Spec: c[i-1], Err: err}
			}
			cmd.Stdin = pipe
		}
		cmds[i] = cmd
	}
	cmds[len(cmds)-1].Stdout = stdout
	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			for _, started := range cmds[:i] {
				_ = started.Process.Kill()
				_ = started.Wait()
			}
			return &ChainError{Spec: c[i], Err: err}
		}
	}
	// Wait in chain order; the pipes' read ends live in the child
	// processes, so reaping an upstream element first is safe.
	var firstErr error
	for i, cmd := range cmds {
		if err := cmd.Wait(); err != nil && firstErr == nil {
			firstErr = &ChainError{Spec: c[i], Err: err}
		}
	}
	return firstErr
}

// Run executes a single process invocation with the given output streams.
func (s Spec) Run(stdout, stderr io.Writer) error {
	return Chain{s}.Run(stdout, stderr)
}
