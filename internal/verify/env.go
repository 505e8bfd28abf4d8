package verify

import (
	"strings"

	"github.com/joho/godotenv"
)

// Variables the server cannot start a database pool without.
var RequiredVars = []string{"USER", "PASSWORD", "CONNECTIONSTRING"}

// Variables with a server-side default.
var OptionalVars = []string{"PORT", "API_ONLY", "LIB_ORA"}

var secretVars = map[string]bool{"PASSWORD": true}

// MergedEnv layers the environment file under environ, the same way the server
// loads it: variables already set in the process win over the file.
// A missing or unreadable file leaves environ as is and is returned as err.
func MergedEnv(envPath string, environ []string) (map[string]string, error) {
	merged := make(map[string]string, len(environ))

	fileVars, err := godotenv.Read(envPath)
	for k, v := range fileVars {
		merged[k] = v
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}
	return merged, err
}

// EnvCheck is the status of one variable.
type EnvCheck struct {
	Name     string
	Value    string // Display value, masked for secrets and required vars
	Set      bool
	Required bool
}

// CheckEnvironment evaluates RequiredVars and OptionalVars against env.
func CheckEnvironment(env map[string]string) ([]EnvCheck, []Finding) {
	var checks []EnvCheck
	var findings []Finding

	for _, name := range RequiredVars {
		v, ok := env[name]
		c := EnvCheck{Name: name, Set: ok && v != "", Required: true}
		if c.Set {
			c.Value = "[set]"
		} else {
			findings = append(findings, Finding{Subject: name, Severity: SeverityError, Message: "required variable not set"})
		}
		checks = append(checks, c)
	}

	for _, name := range OptionalVars {
		v, ok := env[name]
		c := EnvCheck{Name: name, Set: ok && v != ""}
		switch {
		case !c.Set:
			findings = append(findings, Finding{Subject: name, Severity: SeverityWarning, Message: "not set, using default"})
		case secretVars[name]:
			c.Value = "[set]"
		default:
			c.Value = v
		}
		checks = append(checks, c)
	}
	return checks, findings
}
