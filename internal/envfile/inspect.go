package envfile

import (
	"sort"

	"github.com/joho/godotenv"
)

// CountVars parses content as dotenv syntax and returns the number of
// variables it defines. Content that does not parse reports zero variables
// and the parse error; encryption proceeds either way, the count is only
// used for status output.
func CountVars(content []byte) (int, error) {
	vars, err := godotenv.UnmarshalBytes(content)
	if err != nil {
		return 0, err
	}
	return len(vars), nil
}

// Keys parses content as dotenv syntax and returns the variable names in
// sorted order. Values are never returned.
func Keys(content []byte) ([]string, error) {
	vars, err := godotenv.UnmarshalBytes(content)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
