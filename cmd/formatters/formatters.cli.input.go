package main

import (
	"io"
	"os"
	"strings"
)

// readInput reads content from a file or stdin. A single trailing newline
// is dropped so piped input renders like an argument.
func readInput(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == InputSourceStdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}

	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// markupSource returns the markup from --input or the joined positional
// arguments. ok is false when neither was given.
func markupSource(inputPath string, args []string, stdin io.Reader) (source string, ok bool, err error) {
	if inputPath != "" {
		source, err = readInput(inputPath, stdin)
		return source, err == nil, err
	}
	if len(args) == 0 {
		return "", false, nil
	}
	return strings.Join(args, " "), true, nil
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput || path == "" {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}
