// Package tickers handles acquisition of the watched ticker list. The
// list is read once at startup (flag, args, or interactive prompt) and
// never changes while the watcher runs.
package tickers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseList splits a comma-separated ticker list into trimmed, uppercased
// symbols. Empty elements are dropped; duplicates are kept and fetched
// independently.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		t := strings.ToUpper(strings.TrimSpace(part))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FromArgs normalizes tickers given as command-line arguments. Each
// argument may itself be a comma-separated list.
func FromArgs(args []string) []string {
	var out []string
	for _, arg := range args {
		out = append(out, ParseList(arg)...)
	}
	return out
}

// Prompt reads one comma-separated ticker line interactively.
func Prompt(r io.Reader, w io.Writer) ([]string, error) {
	fmt.Fprint(w, "Enter NSE tickers separated by commas (e.g. INFY,TCS,RELIANCE): ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read ticker list: %w", err)
	}

	return ParseList(line), nil
}
