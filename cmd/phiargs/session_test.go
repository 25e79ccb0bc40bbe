package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/phiargs/args"
	"github.com/reusee/phiargs/cmds"
	"github.com/reusee/phiargs/logs"
	"github.com/reusee/phiargs/phis"
	"github.com/reusee/phiargs/starlarks"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer, *bytes.Buffer) {
	out := new(bytes.Buffer)
	logBuf := new(bytes.Buffer)
	traced := true
	var s *session
	dscope.New(
		new(logs.Module),
		new(phis.Module),
		new(starlarks.Module),
	).Fork(
		logs.WriterTo(logBuf),
	).Call(func(
		logger logs.Logger,
		trace phis.Trace,
	) {
		s = &session{
			ctx:    context.Background(),
			logger: logger,
			trace:  trace,
			traced: &traced,
			out:    out,
		}
	})
	return s, out, logBuf
}

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSession(t *testing.T) {
	s, out, _ := newTestSession(t)
	executor := cmds.NewExecutor()
	executor.Define("cue", cmds.Func(s.loadCue))
	executor.Define("star", cmds.Func(s.loadStarlark))
	executor.Define("set", cmds.Func(s.set))
	executor.Define("keys", cmds.Func(s.keys))
	executor.Define("get", cmds.Func(s.get))
	executor.Define("call-as", cmds.Func(s.call))

	cueFile := writeFile(t, "a.cue", `
point: {
	x: 1
	y: 2
}
`)
	starFile := writeFile(t, "b.star", `
y = "two"
def area():
    print("computing")
    return 6
`)

	if err := executor.Execute([]string{
		"cue", cueFile, "point",
		"star", starFile,
		"set", "x", "one",
		"keys",
		"get", "x",
		"get", "area",
		"call-as", "area", "int64",
		"call-as", "y", "string",
	}); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"x",
		"y",
		"area",
		"x = one",
		"area = <deferred>",
		"area = 6",
		"y = two",
		"",
	}, "\n")
	if out.String() != expected {
		t.Fatalf("got %q", out.String())
	}

	err := executor.Execute([]string{"call-as", "x", "int64"})
	var mismatch *args.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"get", "nope"})
	var missing *args.MissingBindingError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"call-as", "x", "foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown type foo") {
		t.Fatalf("got %v", err)
	}
}

func TestSessionSettings(t *testing.T) {
	s, out, _ := newTestSession(t)
	var schemaFile string
	var configFiles []string
	s.schemaFile = &schemaFile
	s.configFiles = &configFiles
	executor := cmds.NewExecutor()
	executor.Define("-schema", cmds.Func(func(file string) {
		schemaFile = file
	}))
	executor.Define("-config", cmds.Func(func(file string) {
		configFiles = append(configFiles, file)
	}))
	executor.Define("cue", cmds.Func(s.loadCue))
	executor.Define("defaults", cmds.Func(s.defaults))
	executor.Define("keys", cmds.Func(s.keys))
	executor.Define("call-as", cmds.Func(s.call))

	base := writeFile(t, "base.cue", `
schema: "point?: close({x: int})"
defaults: {
	b: "1"
	a: "2"
}
`)
	override := writeFile(t, "override.cue", `
defaults: {
	a: "3"
	c: "4"
}
`)
	good := writeFile(t, "good.cue", `point: x: 1`)
	bad := writeFile(t, "bad.cue", `point: y: 1`)

	if err := executor.Execute([]string{
		"-config", base,
		"-config", override,
		"defaults",
		"cue", good, "point",
		"keys",
		"call-as", "a", "string",
	}); err != nil {
		t.Fatal(err)
	}
	if str := out.String(); str != "a\nb\nc\nx\na = 3\n" {
		t.Fatalf("got %q", str)
	}

	// schema from settings rejects the unknown field
	if err := executor.Execute([]string{"cue", bad, "point"}); err == nil {
		t.Fatal("should error")
	}

	// -schema overrides settings
	schema := writeFile(t, "schema.cue", `point?: {...}`)
	if err := executor.Execute([]string{
		"-schema", schema,
		"cue", bad, "point",
	}); err != nil {
		t.Fatal(err)
	}
}

func TestSessionForm(t *testing.T) {
	s, out, _ := newTestSession(t)
	starFile := writeFile(t, "form.star", `
def width():
    return 3

box = form(width, 2, label = "box")
`)
	if err := s.loadStarlark(starFile); err != nil {
		t.Fatal(err)
	}
	box, err := args.Call[args.Env](s.env, "box")
	if err != nil {
		t.Fatal(err)
	}
	if str := box.String(); str != "{00: <deferred>, 01: 2, label: box}" {
		t.Fatalf("got %s", str)
	}
	width, err := args.Call[int64](box, "00")
	if err != nil {
		t.Fatal(err)
	}
	if width != 3 {
		t.Fatalf("got %v", width)
	}
	if err := s.get("box"); err != nil {
		t.Fatal(err)
	}
	if str := out.String(); str != "box = {00: <deferred>, 01: 2, label: box}\n" {
		t.Fatalf("got %q", str)
	}
}

func TestDefine(t *testing.T) {
	s, out, logBuf := newTestSession(t)
	once := true
	s.once = &once
	executor := cmds.NewExecutor()
	define(executor, s)

	starFile := writeFile(t, "n.star", `
def n():
    print("computing")
    return 1
`)
	if err := executor.Execute([]string{"star", starFile}); err == nil {
		t.Fatal("should error")
	}
	if err := executor.Execute([]string{
		"load", "star", starFile,
		"call", "n",
		"call", "n",
	}); err != nil {
		t.Fatal(err)
	}
	if str := out.String(); str != "n = 1\nn = 1\n" {
		t.Fatalf("got %q", str)
	}
	if n := strings.Count(logBuf.String(), "msg=computing"); n != 1 {
		t.Fatalf("got %d", n)
	}

	usage := new(bytes.Buffer)
	executor.PrintUsage(usage)
	if !strings.Contains(usage.String(), "  star <string>\tlayer the globals of a Starlark file") {
		t.Fatalf("got %s", usage.String())
	}
}
