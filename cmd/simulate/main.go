// Package main is the one-shot CLI: validate a parameter snapshot from a
// JSON file and print the calculation result as json, markdown or csv.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	json "github.com/bytedance/sonic"

	"github.com/nirre55/trading-simulator/internal/config"
	"github.com/nirre55/trading-simulator/internal/domain"
	"github.com/nirre55/trading-simulator/internal/engine"
	"github.com/nirre55/trading-simulator/internal/i18n"
	"github.com/nirre55/trading-simulator/internal/reporting"
)

func main() {
	paramsPath := flag.String("params", "", "Path to JSON parameter snapshot (required)")
	variantFlag := flag.String("variant", "manual", "Ladder variant: manual or calculated")
	format := flag.String("format", "markdown", "Output format: json, markdown or csv")
	lang := flag.String("lang", "", "Locale for validation messages (overrides config)")
	configPath := flag.String("config", os.Getenv("TRADSIM_CONFIG"), "Path to YAML config file")
	outPath := flag.String("out", "", "Write output to file instead of stdout")
	flag.Parse()

	if *paramsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -params is required")
		flag.Usage()
		os.Exit(1)
	}

	variant := domain.Variant(*variantFlag)
	if !variant.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q (want manual or calculated)\n", *variantFlag)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	locale := cfg.Locale.Default
	if *lang != "" {
		locale = i18n.Match(*lang)
	}

	data, err := os.ReadFile(*paramsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading params: %v\n", err)
		os.Exit(1)
	}
	var params domain.InputParameters
	if err := json.Unmarshal(data, &params); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing params: %v\n", err)
		os.Exit(1)
	}

	if errs := engine.Validate(params, variant); len(errs) > 0 {
		keys := make([]string, 0, len(errs))
		for key := range errs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, i18n.Resolve(locale, errs[key]))
		}
		os.Exit(1)
	}

	result := engine.Calculate(params, variant)

	var out string
	switch *format {
	case "json":
		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			os.Exit(1)
		}
		out = string(payload) + "\n"
	case "markdown":
		out = reporting.RenderMarkdown(&result)
	case "csv":
		out = reporting.RenderCSV(result.TradeDetails)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want json, markdown or csv)\n", *format)
		os.Exit(1)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(out), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(out)
}
