package parse

import "github.com/google/shlex"

// Split breaks a command line into arguments using POSIX shell quoting rules. Quotes group words and backslashes
// escape the next character; no variable expansion takes place.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
