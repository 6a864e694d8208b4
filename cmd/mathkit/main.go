// Command mathkit performs floating-point arithmetic from the command line.
//
// Usage:
//
//	mathkit add 2 3
//	mathkit divide 10 4 --format json
//	mathkit sqrt -- -4          # exit code 1
//	mathkit call calculator --args '{"A": 2, "B": 8, "Op": "pow"}'
//
// A .env file in the working directory is loaded when present; see
// MATHKIT_LOG_LEVEL and MATHKIT_LOG_FORMAT for logging.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/leofalp/mathkit/internal/cli"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "mathkit: loading .env: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mathkit: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
