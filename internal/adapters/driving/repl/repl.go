// Package repl implements the line-oriented key-value shell.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driving"
	"github.com/custodia-labs/burrowdb/internal/logger"
)

const prompt = "burrow> "

// maxLineBytes bounds one command line. bufio.Scanner stops at 64 KiB
// by default, which a pasted PUT value can exceed.
const maxLineBytes = 4 << 20

var helpLines = []string{
	"Available commands:",
	"  PUT <key> <value>  - Store a key-value pair",
	"  GET <key>          - Retrieve value for key",
	"  LIST               - Show all keys",
	"  HELP               - Show this help",
	"  EXIT               - Quit the program",
}

// Interpreter executes shell commands against a KV service.
type Interpreter struct {
	kv  driving.KVService
	out io.Writer
}

// New creates an interpreter writing responses to out.
func New(kv driving.KVService, out io.Writer) *Interpreter {
	return &Interpreter{kv: kv, out: out}
}

// Run reads commands from in until EOF, EXIT or cancellation. The
// banner and prompt are only shown when interactive is set.
func (i *Interpreter) Run(ctx context.Context, in io.Reader, interactive bool) error {
	if interactive {
		i.printf("BurrowDB shell - single-threaded KV store\n")
		i.printf("Commands: PUT <key> <value> | GET <key> | LIST | HELP | EXIT\n")
		i.printf("Example: PUT name Alice\n\n")
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if interactive {
			i.printf(prompt)
		}
		if !scanner.Scan() {
			break
		}
		if !i.Execute(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if interactive {
		i.printf("\n")
	}
	return nil
}

// Execute runs one command line. It returns false when the session
// should end. Verbs match in any case and PUT without a value stores
// the empty string.
func (i *Interpreter) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	logger.Debug("shell command %q", fields[0])

	switch verb, args := strings.ToUpper(fields[0]), fields[1:]; verb {
	case "PUT":
		if len(args) == 0 {
			i.printf("Usage: PUT <key> <value>\n")
			return true
		}
		i.put(args[0], strings.Join(args[1:], " "))
	case "GET":
		if len(args) != 1 {
			i.printf("Usage: GET <key>\n")
			return true
		}
		i.get(args[0])
	case "LIST":
		i.list()
	case "HELP":
		for _, l := range helpLines {
			i.printf("%s\n", l)
		}
	case "EXIT", "QUIT":
		i.printf("Goodbye from BurrowDB!\n")
		return false
	default:
		i.printf("Unknown command. Type HELP for available commands.\n")
	}
	return true
}

func (i *Interpreter) put(key, value string) {
	if err := i.kv.Put(key, value); err != nil {
		i.printf("Error: %v\n", err)
		return
	}
	i.printf("Stored: %s = %s\n", key, value)
}

func (i *Interpreter) get(key string) {
	value, err := i.kv.Get(key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		i.printf("Key '%s' not found\n", key)
	case err != nil:
		i.printf("Error: %v\n", err)
	default:
		i.printf("%s: %s\n", key, value)
	}
}

func (i *Interpreter) list() {
	keys := i.kv.List()
	if len(keys) == 0 {
		i.printf("No keys stored.\n")
		return
	}
	i.printf("All keys in database:\n")
	for _, k := range keys {
		i.printf("  %s\n", k)
	}
}

func (i *Interpreter) printf(format string, args ...any) {
	fmt.Fprintf(i.out, format, args...)
}
