// Command policylint validates TLS security policies against named
// security rules and reports every violation found.
//
// Exit codes: 0 compliant, 1 violations found, 2 internal or
// configuration error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/policylint/policylint/internal/hexutil"
	"github.com/policylint/policylint/pkg/output"
	"github.com/policylint/policylint/pkg/policy"
	"github.com/policylint/policylint/pkg/probe"
	"github.com/policylint/policylint/pkg/rules"
	"github.com/policylint/policylint/pkg/ui"
)

const (
	exitCompliant  = 0
	exitViolations = 1
	exitError      = 2
)

type options struct {
	policyArg    string
	ruleNames    string
	format       string
	outFile      string
	probeAddr    string
	insecure     bool
	noCapture    bool
	noColor      bool
	listPolicies bool
	listRules    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("policylint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.policyArg, "policy", "default", "built-in policy name or path to a YAML policy file")
	fs.StringVar(&opts.ruleNames, "rules", "", "comma-separated rule names overriding the policy's enabled set")
	fs.StringVar(&opts.format, "format", "console", "report format: console or json")
	fs.StringVar(&opts.outFile, "o", "", "write the report to a file instead of stdout")
	fs.StringVar(&opts.probeAddr, "probe", "", "also probe host[:port] and check the negotiated suite against the policy")
	fs.BoolVar(&opts.insecure, "insecure", false, "skip certificate verification when probing")
	fs.BoolVar(&opts.noCapture, "no-capture", false, "report only pass/fail, without per-violation diagnostics")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&opts.listPolicies, "list-policies", false, "list built-in policies and exit")
	fs.BoolVar(&opts.listRules, "list-rules", false, "list security rules and exit")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if opts.noColor || opts.outFile != "" {
		ui.DisableColor()
	} else {
		ui.AutoColor()
	}

	if opts.listPolicies {
		for _, name := range policy.Names() {
			fmt.Fprintln(stdout, name)
		}
		return exitCompliant
	}
	if opts.listRules {
		for _, name := range rules.Names() {
			fmt.Fprintln(stdout, name)
		}
		return exitCompliant
	}

	pol, err := resolvePolicy(opts.policyArg)
	if err != nil {
		fmt.Fprintf(stderr, "policylint: %v\n", err)
		return exitError
	}

	if opts.ruleNames != "" {
		set, err := parseRuleNames(opts.ruleNames)
		if err != nil {
			fmt.Fprintf(stderr, "policylint: %v\n", err)
			return exitError
		}
		override := *pol
		override.Rules = set
		pol = &override
	}

	out := io.Writer(stdout)
	if opts.outFile != "" {
		f, err := os.Create(opts.outFile)
		if err != nil {
			fmt.Fprintf(stderr, "policylint: %v\n", err)
			return exitError
		}
		defer f.Close()
		out = f
	}

	var res rules.Result
	defer res.Release()
	if !opts.noCapture {
		res.InitCapture()
	}

	if err := rules.ValidateAll(pol, &res); err != nil {
		fmt.Fprintf(stderr, "policylint: %v\n", err)
		return exitError
	}

	report := output.NewReport(pol.Name, &res)
	if err := writeReport(out, opts.format, report); err != nil {
		fmt.Fprintf(stderr, "policylint: %v\n", err)
		return exitError
	}

	if opts.probeAddr != "" {
		if err := runProbe(out, opts, pol); err != nil {
			fmt.Fprintf(stderr, "policylint: %v\n", err)
			return exitError
		}
	}

	if res.FoundError() {
		return exitViolations
	}
	return exitCompliant
}

// resolvePolicy accepts either a built-in policy name or a path to a
// YAML policy file.
func resolvePolicy(arg string) (*policy.Policy, error) {
	pol, err := policy.Lookup(arg)
	if err == nil {
		return pol, nil
	}
	if _, statErr := os.Stat(arg); statErr == nil {
		return policy.Load(arg)
	}
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		return policy.Load(arg)
	}
	return nil, err
}

func parseRuleNames(list string) (rules.RuleSet, error) {
	var set rules.RuleSet
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, ok := rules.ByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown rule %q (see -list-rules)", name)
		}
		set = set.With(id)
	}
	return set, nil
}

func writeReport(w io.Writer, format string, r *output.Report) error {
	switch format {
	case "console":
		return output.WriteConsole(w, r)
	case "json":
		return output.WriteJSON(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runProbe(out io.Writer, opts options, pol *policy.Policy) error {
	ctx, cancel := context.WithTimeout(context.Background(), probe.DefaultTimeout)
	defer cancel()

	pr := &probe.Prober{SkipVerify: opts.insecure}
	info, err := pr.Do(ctx, opts.probeAddr, pol)
	if err != nil {
		return err
	}

	suite := info.SuiteName
	if suite == "" {
		suite = hexutil.Padded(info.SuiteID)
	}
	verdict := ui.PassStyle.Render("allowed by policy")
	if !info.Allowed {
		verdict = ui.FailStyle.Render("not in policy")
	}
	_, err = fmt.Fprintf(out, "%s negotiated %s (%s)\n", info.Host, suite, verdict)
	return err
}
