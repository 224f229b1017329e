package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical"
	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical/config"
)

func TestRender_Table(t *testing.T) {
	result := lexical.ScanSource([]byte("int x = 1; // init\n"))

	var buf bytes.Buffer
	render(&buf, result, config.Default(), false)

	out := buf.String()

	if !strings.Contains(out, "Cleaned-up Input:") {
		t.Errorf("Expected cleaned input section, got:\n%s", out)
	}

	if strings.Contains(out, "init") {
		t.Errorf("Expected comment text stripped from output, got:\n%s", out)
	}

	if !strings.Contains(out, "KEYWORD        int") {
		t.Errorf("Expected KEYWORD row in table, got:\n%s", out)
	}
}

func TestRender_TableWithoutCleaned(t *testing.T) {
	result := lexical.ScanSource([]byte("int x;"))

	conf := config.Default()
	conf.ShowCleaned = false

	var buf bytes.Buffer
	render(&buf, result, conf, false)

	if strings.Contains(buf.String(), "Cleaned-up Input:") {
		t.Errorf("Expected no cleaned input section, got:\n%s", buf.String())
	}
}

func TestRender_Verbose(t *testing.T) {
	result := lexical.ScanSource([]byte("x = 1;"))

	var buf bytes.Buffer
	render(&buf, result, config.Default(), true)

	if !strings.Contains(buf.String(), "Type: IDENTIFIER, Value: x") {
		t.Errorf("Expected per-token listing, got:\n%s", buf.String())
	}
}

func TestRender_JSON(t *testing.T) {
	result := lexical.ScanSource([]byte("int x;"))

	conf := config.Default()
	conf.Format = "json"

	var buf bytes.Buffer
	render(&buf, result, conf, false)

	out := buf.String()

	if !strings.Contains(out, `"category": "KEYWORD"`) {
		t.Errorf("Expected JSON group for KEYWORD, got:\n%s", out)
	}

	if strings.Contains(out, "Cleaned-up Input:") {
		t.Errorf("Expected no table sections in JSON output, got:\n%s", out)
	}
}
