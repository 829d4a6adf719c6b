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

package proc

import (
	"bytes"
	"errors"
	"io/ioutil"
	"testing"
)

func TestSpecString(t *testing.T) {
	if s := Command("hhfilter").String(); s != "hhfilter" {
		t.Errorf("Spec.String without args failed: %v", s)
	}
	if s := Command("hhfilter", "-id", "90").String(); s != "hhfilter -id 90" {
		t.Errorf("Spec.String with args failed: %v", s)
	}
}

func TestEmptyChain(t *testing.T) {
	if err := (Chain{}).Run(ioutil.Discard, ioutil.Discard); err != nil {
		t.Error("empty chain should succeed:", err)
	}
}

func TestSingleProcess(t *testing.T) {
	var out bytes.Buffer
	err := Command("echo", "hello").Run(&out, ioutil.Discard)
	if err != nil {
		t.Fatal("echo failed:", err)
	}
	if out.String() != "hello\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestChainPipesStdoutToStdin(t *testing.T) {
	var out bytes.Buffer
	chain := Chain{
		Command("echo", "seed"),
		Command("tr", "a-z", "A-Z"),
		Command("cat"),
	}
	if err := chain.Run(&out, ioutil.Discard); err != nil {
		t.Fatal("chain failed:", err)
	}
	if out.String() != "SEED\n" {
		t.Errorf("unexpected chain output: %q", out.String())
	}
}

func TestChainReportsFailingElement(t *testing.T) {
	chain := Chain{
		Command("echo", "ignored"),
		Command("sh", "-c", "exit 3"),
	}
	err := chain.Run(ioutil.Discard, ioutil.Discard)
	if err == nil {
		t.Fatal("chain with failing element should report an error")
	}
	var chainErr *ChainError
	if !errors.As(err, &chainErr) {
		t.Fatalf("expected a ChainError, got %T", err)
	}
	if chainErr.Spec.Path != "sh" {
		t.Errorf("wrong failing element: %v", chainErr.Spec)
	}
	if chainErr.ExitCode() != 3 {
		t.Errorf("wrong exit code: %v", chainErr.ExitCode())
	}
}

func TestChainStartFailure(t *testing.T) {
	chain := Chain{
		Command("echo", "ignored"),
		Command("pfamdiv-no-such-tool"),
		Command("cat"),
	}
	err := chain.Run(ioutil.Discard, ioutil.Discard)
	if err == nil {
		t.Fatal("chain with unknown executable should report an error")
	}
	var chainErr *ChainError
	if !errors.As(err, &chainErr) {
		t.Fatalf("expected a ChainError, got %T", err)
	}
	if chainErr.Spec.Path != "pfamdiv-no-such-tool" {
		t.Errorf("wrong failing element: %v", chainErr.Spec)
	}
	if chainErr.ExitCode() != -1 {
		t.Errorf("exit code for unstarted process should be -1: %v", chainErr.ExitCode())
	}
}

func TestChainFirstFailureWins(t *testing.T) {
	chain := Chain{
		Command("sh", "-c", "exit 7"),
		Command("sh", "-c", "cat >/dev/null; exit 9"),
	}
	err := chain.Run(ioutil.Discard, ioutil.Discard)
	var chainErr *ChainError
	if !errors.As(err, &chainErr) {
		t.Fatalf("expected a ChainError, got %T", err)
	}
	if chainErr.ExitCode() != 7 {
		t.Errorf("first failing element should win: %v", chainErr.ExitCode())
	}
}
