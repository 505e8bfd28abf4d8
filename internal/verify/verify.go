// Package verify inspects a project's entity configuration and environment
// without starting the server. It backs the `verify` subcommand.
package verify

import (
	"dno-launcher/internal/config"
	"dno-launcher/internal/launcher"
	"dno-launcher/internal/logger"
)

// Severity classifies a Finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is one problem found while verifying.
type Finding struct {
	Subject  string // Entity key or variable name
	Severity Severity
	Message  string
}

// Summary counts what Run found.
type Summary struct {
	Entities int
	Errors   int
	Warnings int
}

// OK reports whether no errors were found. Warnings do not fail verification.
func (s Summary) OK() bool {
	return s.Errors == 0
}

func (s *Summary) add(findings []Finding) {
	for _, f := range findings {
		if f.Severity == SeverityError {
			s.Errors++
		} else {
			s.Warnings++
		}
	}
}

// Run verifies the project under root and prints a report through p.
// environ is the process environment the server would inherit.
func Run(p *logger.Printer, root string, layout config.Layout, environ []string) Summary {
	var sum Summary

	p.Step("DNO-Oracle configuration check\n")
	p.Step("==============================\n")
	p.Blank()

	p.Step("[INFO] Reading %s...\n", layout.EntitiesFile)
	ef, err := LoadEntities(config.Abs(root, layout.EntitiesFile))
	if err != nil {
		p.Error("[ERROR] %v\n", err)
		sum.Errors++
		printSummary(p, sum)
		return sum
	}
	p.Info("[INFO] %s parsed\n", layout.EntitiesFile)

	sum.Entities = len(ef.Entities)
	p.Blank()
	p.Step("[INFO] Entities found: %d\n", sum.Entities)
	for _, key := range ef.Names() {
		e := ef.Entities[key]
		p.Blank()
		p.Warn("  > %s\n", key)
		if e.TableName != "" {
			p.Plain("    table: %s\n", e.TableName)
		}
		if e.PrimaryKey != "" {
			p.Plain("    primary key: %s\n", e.PrimaryKey)
		}
		if len(e.Fields) > 0 {
			p.Plain("    fields: %d\n", len(e.Fields))
		}

		findings := CheckEntity(key, e)
		printFindings(p, "    ", findings)
		sum.add(findings)
	}

	p.Blank()
	p.Step("[INFO] Checking environment variables...\n")
	env, err := MergedEnv(config.Abs(root, layout.EnvFile), environ)
	if err != nil {
		p.Warn("  [WARN] Could not read %s, using process environment only: %v\n", layout.EnvFile, err)
	}
	checks, findings := CheckEnvironment(env)
	for _, c := range checks {
		if c.Set {
			p.Info("  %s: %s\n", c.Name, c.Value)
		}
	}
	printFindings(p, "  ", findings)
	// Unset optional variables are shown but do not count as warnings.
	sum.add(errorsOnly(findings))

	printSummary(p, sum)
	printRecommendations(p, sum)
	printNextSteps(p, root, layout)
	return sum
}

func errorsOnly(findings []Finding) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

func printFindings(p *logger.Printer, indent string, findings []Finding) {
	for _, f := range findings {
		if f.Severity == SeverityError {
			p.Error("%s[ERROR] %s: %s\n", indent, f.Subject, f.Message)
		} else {
			p.Warn("%s[WARN] %s: %s\n", indent, f.Subject, f.Message)
		}
	}
}

func printSummary(p *logger.Printer, sum Summary) {
	p.Blank()
	p.Step("Summary\n")
	p.Step("=======\n")
	if sum.Errors == 0 {
		p.Info("No critical errors found\n")
	} else {
		p.Error("%d critical error(s) found\n", sum.Errors)
	}
	if sum.Warnings == 0 {
		p.Info("No warnings\n")
	} else {
		p.Warn("%d warning(s) found\n", sum.Warnings)
	}
}

func printRecommendations(p *logger.Printer, sum Summary) {
	if sum.Errors == 0 && sum.Warnings == 0 {
		return
	}
	p.Blank()
	p.Step("Recommendations:\n")
	if sum.Warnings > 0 {
		p.Plain("  - Add 'allowedConnections' to every entity to avoid multi-connection errors\n")
		p.Plain("  - Configure 'validation', 'cache' and 'operations' for incomplete entities\n")
	}
	if sum.Errors > 0 {
		p.Plain("  - Fix the critical errors before starting the server\n")
		p.Plain("  - Make sure every entity has the required basic fields\n")
	}
}

func printNextSteps(p *logger.Printer, root string, layout config.Layout) {
	port := config.ResolveConfiguredPort(config.Abs(root, layout.EnvFile), layout.DefaultPort)

	p.Blank()
	p.Step("To start the server:\n")
	p.Hint("   %s\n", launcher.Command{Name: layout.Runtime, Args: launcher.BuildArgs(layout, config.ModeEnhanced)})
	p.Blank()
	p.Step("API documentation:\n")
	p.Hint("   http://localhost:%d/api/info\n", port)
}
