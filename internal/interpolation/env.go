// Package interpolation expands ${VAR} and ${VAR:default} references in
// configuration values, so credentials can stay out of config files.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// Pattern for ${VAR_NAME} and ${VAR_NAME:default} syntax - captures colon explicitly
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// ExpandEnvVars expands environment variable references in the input.
//
// If the variable is not set, the default after the colon is used. A missing
// variable with no default is an error; the reference is left in place so
// the error message points at it.
func ExpandEnvVars(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	var missingVars []error
	result := envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		// submatches: [full_match, varName, colon, defaultValue]

		varName := submatches[1]
		colonIsPresent := submatches[2] == ":"
		defaultValue := submatches[3]

		value, exists := os.LookupEnv(varName)
		if exists {
			return value
		}

		// ${VAR:} is a valid reference with an empty default.
		if colonIsPresent {
			return defaultValue
		}

		missingVars = append(
			missingVars,
			fmt.Errorf("environment variable not defined: %s", varName),
		)
		return match
	})

	return result, errors.Join(missingVars...)
}
