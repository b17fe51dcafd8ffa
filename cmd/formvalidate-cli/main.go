package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	formvalidate "github.com/goliatone/go-formvalidate"
	pkgopenapi "github.com/goliatone/go-formvalidate/pkg/openapi"
	"github.com/goliatone/go-formvalidate/pkg/report"
)

func main() {
	rules := flag.String("rules", "", "rule-set document (YAML or JSON)")
	source := flag.String("source", "", "OpenAPI document path or URL")
	opID := flag.String("operation", "", "operation ID to derive rules from")
	data := flag.String("data", "", "form values as a JSON object (reads stdin if empty)")
	format := flag.String("format", "text", "report format: text, json or html")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	engine, err := buildEngine(ctx, *rules, *source, *opID)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	values, err := readValues(*data)
	if err != nil {
		log.Fatalf("Failed to read form values: %v", err)
	}

	state := engine.ValidateForm(values)

	payload, err := renderReport(state, *format)
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		fmt.Print(string(payload))
	}

	if !state.Valid {
		os.Exit(1)
	}
}

func buildEngine(ctx context.Context, rules, source, opID string) (*formvalidate.Engine, error) {
	switch {
	case rules != "" && source != "":
		return nil, fmt.Errorf("use either -rules or -source, not both")
	case rules != "":
		return formvalidate.EngineFromRuleSetFile(rules)
	case source != "":
		if opID == "" {
			return nil, fmt.Errorf("-source requires -operation")
		}
		src := parseSource(source)
		if src == nil {
			return nil, fmt.Errorf("invalid source: %q", source)
		}
		return formvalidate.EngineFromOpenAPI(ctx, httpLoaderFor(source), src, opID)
	default:
		return nil, fmt.Errorf("either -rules or -source is required")
	}
}

func httpLoaderFor(source string) *pkgopenapi.Loader {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return pkgopenapi.NewLoader(pkgopenapi.WithHTTPFallback(0))
	}
	return nil
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}

func readValues(data string) (map[string]string, error) {
	raw := []byte(data)
	if data == "" {
		stdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		raw = stdin
	}
	if len(raw) == 0 {
		return map[string]string{}, nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("values must be a JSON object of strings: %w", err)
	}
	return values, nil
}

func renderReport(state formvalidate.FormState, format string) ([]byte, error) {
	switch format {
	case "text":
		return []byte(report.NewSummary(state).Text()), nil
	case "json":
		return report.NewSummary(state).JSON()
	case "html":
		renderer, err := report.NewHTML()
		if err != nil {
			return nil, err
		}
		return renderer.RenderState(state)
	default:
		return nil, fmt.Errorf("unknown format: %q", format)
	}
}
