// Command jsondoc reads a JSON document from a file or stdin, applies one
// path-addressed operation, and writes the result to stdout or back to the
// file. The process exit status is non-zero for any non-ok result code.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/alecthomas/kong"

	"github.com/dhawalhost/jsondoc"
)

// docVar is the store variable the CLI keeps the working document under.
const docVar = "doc"

var cli struct {
	File  string `help:"Path to the JSON document file. Reads stdin when omitted." short:"f" type:"path"`
	Write bool   `help:"Write the mutated document back to the file instead of stdout." short:"w"`
	Debug bool   `help:"Enable warn-level operation logging on stderr." short:"d"`

	Pretty  PrettyCmd  `cmd:"" help:"Re-format the document with indentation."`
	Compact CompactCmd `cmd:"" help:"Minify the document."`
	Get     GetCmd     `cmd:"" help:"Print the element at a path."`
	Import  ImportCmd  `cmd:"" help:"Print each top-level key as a KEY=value line."`
	Add     AddCmd     `cmd:"" help:"Insert a new element at a path."`
	Set     SetCmd     `cmd:"" help:"Replace the element at a path, preserving its type."`
	Delete  DeleteCmd  `cmd:"" help:"Remove the element at a path."`
}

// appEnv carries everything a command needs to run; tests build one around
// an in-memory buffer.
type appEnv struct {
	store  jsondoc.MemStore
	runner *jsondoc.Runner
	file   string
	write  bool
	out    io.Writer
}

type PrettyCmd struct{}

func (c *PrettyCmd) Run(app *appEnv) error {
	return app.emitDocument(app.runner.Pretty(docVar))
}

type CompactCmd struct{}

func (c *CompactCmd) Run(app *appEnv) error {
	return app.emitDocument(app.runner.Compact(docVar))
}

type GetCmd struct {
	Path     string `arg:"" optional:"" help:"Slash path to the element; empty prints the whole document."`
	ShowType bool   `help:"Also print the element's type tag." short:"t"`
}

func (c *GetCmd) Run(app *appEnv) error {
	value, code := app.runner.Get(docVar, c.Path)
	if code != jsondoc.OK {
		return codeError(code)
	}
	fmt.Fprintln(app.out, value)
	if c.ShowType {
		if typeTag, ok := app.store.Get(jsondoc.TypeVar); ok {
			fmt.Fprintln(app.out, typeTag)
		}
	}
	return nil
}

type ImportCmd struct{}

func (c *ImportCmd) Run(app *appEnv) error {
	before := make(map[string]bool, len(app.store))
	for name := range app.store {
		before[name] = true
	}
	if code := app.runner.Import(docVar); code != jsondoc.OK {
		return codeError(code)
	}
	var keys []string
	for name := range app.store {
		if !before[name] && name != jsondoc.ResultVar {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		value, _ := app.store.Get(key)
		fmt.Fprintf(app.out, "%s=%s\n", key, value)
	}
	return nil
}

type AddCmd struct {
	Path  string `arg:"" help:"Insertion point; use / for the document root."`
	Type  string `arg:"" help:"Element type: bool, null, number, string, array or object."`
	Name  string `arg:"" optional:"" help:"Member name when inserting into an object; ignored for arrays."`
	Value string `arg:"" optional:"" help:"Raw value text."`
}

func (c *AddCmd) Run(app *appEnv) error {
	return app.emitDocument(app.runner.Add(docVar, c.Path, c.Type, c.Name, c.Value))
}

type SetCmd struct {
	Path  string `arg:"" help:"Path to the element to replace."`
	Value string `arg:"" optional:"" help:"Raw replacement text, coerced to the element's current type."`
}

func (c *SetCmd) Run(app *appEnv) error {
	return app.emitDocument(app.runner.Set(docVar, c.Path, c.Value))
}

type DeleteCmd struct {
	Path string `arg:"" help:"Path to the element to remove."`
}

func (c *DeleteCmd) Run(app *appEnv) error {
	return app.emitDocument(app.runner.Delete(docVar, c.Path))
}

// emitDocument writes the (possibly mutated) document after a successful
// operation, either back to the input file or to stdout.
func (app *appEnv) emitDocument(code jsondoc.Code) error {
	if code != jsondoc.OK {
		return codeError(code)
	}
	text, _ := app.store.Get(docVar)
	if app.write && app.file != "" {
		return os.WriteFile(app.file, []byte(text), 0o644)
	}
	_, err := fmt.Fprintln(app.out, text)
	return err
}

func codeError(code jsondoc.Code) error {
	return fmt.Errorf("operation failed: %s", code)
}

func loadDocument(file string) (string, error) {
	if file == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(file)
	return string(b), err
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jsondoc"),
		kong.Description("Read, insert, replace and delete elements of a JSON document by slash path."),
		kong.UsageOnError(),
	)

	text, err := loadDocument(cli.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsondoc: %v\n", err)
		os.Exit(1)
	}

	store := jsondoc.MemStore{}
	if text != "" {
		store.Set(docVar, text)
	}
	runner := jsondoc.New(store)
	if cli.Debug {
		runner.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}

	app := &appEnv{
		store:  store,
		runner: runner,
		file:   cli.File,
		write:  cli.Write,
		out:    os.Stdout,
	}
	if err := ctx.Run(app); err != nil {
		fmt.Fprintf(os.Stderr, "jsondoc: %v\n", err)
		os.Exit(1)
	}
}
