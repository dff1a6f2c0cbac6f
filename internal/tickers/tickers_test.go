package tickers

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"basic", "INFY,TCS,RELIANCE", []string{"INFY", "TCS", "RELIANCE"}},
		{"lowercase and spaces", " infy , tcs ", []string{"INFY", "TCS"}},
		{"empty elements dropped", "INFY,,TCS,", []string{"INFY", "TCS"}},
		{"duplicates kept", "INFY,INFY", []string{"INFY", "INFY"}},
		{"empty input", "", nil},
		{"only separators", " , , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromArgs(t *testing.T) {
	got := FromArgs([]string{"INFY,TCS", "reliance"})
	want := []string{"INFY", "TCS", "RELIANCE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromArgs() = %v, want %v", got, want)
	}
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	got, err := Prompt(strings.NewReader("infy, tcs\n"), &out)
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}

	want := []string{"INFY", "TCS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Prompt() = %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "Enter NSE tickers") {
		t.Errorf("prompt text = %q, want ticker prompt", out.String())
	}
}

func TestPrompt_EOFWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	got, err := Prompt(strings.NewReader("INFY"), &out)
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"INFY"}) {
		t.Errorf("Prompt() = %v, want [INFY]", got)
	}
}
