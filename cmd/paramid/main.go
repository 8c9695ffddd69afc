package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/hostabi/cstr"
	"github.com/wippyai/hostabi/paramid"
)

func main() {
	var (
		narrowCap   = flag.Int("narrow", 0, "Preview a narrow buffer of this many bytes")
		wideCap     = flag.Int("wide", 0, "Preview a wide buffer of this many UTF-16 units")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log copy diagnostics to stderr (ignored with -i)")
	)
	flag.Parse()

	if *narrowCap < 0 || *wideCap < 0 {
		fmt.Fprintln(os.Stderr, "Error: buffer sizes must not be negative")
		os.Exit(1)
	}

	logger, err := newLogger(*verbose, *interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logger != nil {
		defer logger.Sync()
		cstr.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*narrowCap, *wideCap); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Usage: paramid [-narrow N] [-wide N] name...")
			fmt.Fprintln(os.Stderr, "       <names> | paramid [-narrow N] [-wide N]")
			fmt.Fprintln(os.Stderr, "       paramid -i  (interactive mode)")
			os.Exit(1)
		}
		names, err = readNames(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read stdin: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(os.Stdout, names, *narrowCap, *wideCap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns the diagnostics logger for the run mode, or nil when
// diagnostics stay off. The TUI owns the terminal and shows copy errors in
// its view, so interactive mode never logs.
func newLogger(verbose, interactive bool) (*zap.Logger, error) {
	if !verbose || interactive {
		return nil, nil
	}
	return zap.NewDevelopment()
}

func run(w io.Writer, names []string, narrowCap, wideCap int) error {
	seen := make(map[uint32]string, len(names))
	for _, name := range names {
		id := paramid.Hash(name)
		line := formatLine(name, narrowCap, wideCap)
		if prev, ok := seen[id]; ok && prev != name {
			line += "\tcollides=" + prev
		} else {
			seen[id] = name
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatLine renders one name as "name<TAB>id" followed by the requested
// buffer previews.
func formatLine(name string, narrowCap, wideCap int) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('\t')
	b.WriteString(paramid.New(name).String())

	if narrowCap > 0 {
		b.WriteString("\tnarrow=")
		b.WriteString(fmt.Sprintf("%q", narrowPreview(name, narrowCap)))
	}
	if wideCap > 0 {
		b.WriteString("\twide=")
		preview, err := widePreview(name, wideCap)
		if err != nil {
			b.WriteString("!" + err.Error())
		} else {
			b.WriteString(fmt.Sprintf("%q", preview))
		}
	}
	return b.String()
}

func narrowPreview(name string, capacity int) string {
	buf := make([]int8, capacity)
	cstr.CopyNarrow(buf, name)
	return cstr.Narrow(buf)
}

func widePreview(name string, capacity int) (string, error) {
	buf := make([]uint16, capacity)
	if _, err := cstr.CopyWide(buf, name); err != nil {
		return "", err
	}
	return cstr.Wide(buf), nil
}

func readNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}
