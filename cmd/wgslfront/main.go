package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/th13vn/wgslfront/pkg/ast"
	"github.com/th13vn/wgslfront/pkg/dump"
	"github.com/th13vn/wgslfront/pkg/gather"
	"github.com/th13vn/wgslfront/pkg/parser"
	"github.com/th13vn/wgslfront/pkg/types"
	"github.com/th13vn/wgslfront/pkg/version"
)

var (
	// Version information (set during build via ldflags, or detected from build info)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" && info.Main.Version != "(devel)" {
				Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if len(setting.Value) >= 7 {
						GitCommit = setting.Value[:7]
					}
				case "vcs.time":
					BuildTime = setting.Value
				}
			}
		}
	}
}

var (
	outputFile  string
	prettyPrint bool
	utf16Input  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wgslfront",
		Short: "wgslfront: a WGSL shader front end",
		Long: `wgslfront lexes, parses, and inspects WGSL shader modules.
It parses WGSL source into an AST, can pretty-print it back out in a
stable format, gather a pipeline entry point's inputs and outputs, and
validate a module's enable directives.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	}

	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a WGSL shader and output its AST as JSON",
		Long: `Parse a WGSL shader module and output the Abstract Syntax Tree as JSON.
If no file is specified or '-' is given, reads from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	parseCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	parseCmd.Flags().BoolVarP(&prettyPrint, "pretty", "p", true, "Pretty print JSON output")
	parseCmd.Flags().BoolVar(&utf16Input, "utf16", false, "Decode stdin/file as UTF-16 before parsing")

	dumpCmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Parse a WGSL shader and re-emit it in the stable pretty-printed format",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	gatherCmd := &cobra.Command{
		Use:   "gather <entry-point> [file]",
		Short: "Gather a pipeline entry point's inputs and outputs",
		Long: `Parse a WGSL shader module and gather the inputs and outputs of the
named entry point function (one carrying @vertex, @fragment, or
@compute), printing the result as JSON.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runGather,
	}
	gatherCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate WGSL syntax and enable-directive extensions",
		Long: `Validate the syntax of a WGSL shader module and check that every
enable directive names a recognized extension. Returns exit code 0 if
valid, 1 otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}

	extensionsCmd := &cobra.Command{
		Use:   "extensions",
		Short: "List the recognized enable-directive extension names",
		RunE:  runExtensions,
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(gatherCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(extensionsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	module, err := parseInput(input)
	if err != nil {
		return compileError(err)
	}

	var output []byte
	if prettyPrint {
		output, err = json.MarshalIndent(module, "", "  ")
	} else {
		output, err = json.Marshal(module)
	}
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}

	return writeOutput(output)
}

func runDump(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	module, err := parser.Parse(string(input), parser.Options{})
	if err != nil {
		return compileError(err)
	}

	return writeOutput([]byte(dump.Dump(module)))
}

func runGather(cmd *cobra.Command, args []string) error {
	entryPoint := args[0]
	input, err := readInput(args[1:])
	if err != nil {
		return err
	}

	module, err := parser.Parse(string(input), parser.Options{})
	if err != nil {
		return compileError(err)
	}

	fn := module.FindFunction(entryPoint)
	if fn == nil {
		return compileError(fmt.Errorf("no function named %q", entryPoint))
	}
	if !fn.IsEntryPoint() {
		return compileError(fmt.Errorf("%q is not a pipeline entry point (no @vertex/@fragment/@compute attribute)", entryPoint))
	}

	ctx := types.NewContext()
	ctx.AddModule(module)

	items, err := gather.Gather(fn, ctx)
	if err != nil {
		return compileError(err)
	}

	output, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}

	return writeOutput(output)
}

func runValidate(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	module, err := parseInput(input)
	if err != nil {
		var parseErr *parser.Error
		if errors.As(err, &parseErr) {
			fmt.Fprintf(os.Stderr, "Syntax error: line %d:%d: %s\n", parseErr.Span.Start.Line, parseErr.Span.Start.Column, parseErr.Message)
			os.Exit(1)
		}
		return compileError(err)
	}

	if err := version.Validate(module); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Syntax OK")
	return nil
}

func runExtensions(cmd *cobra.Command, args []string) error {
	for _, name := range version.KnownExtensions() {
		fmt.Println(name)
	}
	return nil
}

func parseInput(content []byte) (*ast.ShaderModule, error) {
	if utf16Input {
		return parser.Parse16(decodeUTF16(content), parser.Options{})
	}
	return parser.Parse(string(content), parser.Options{})
}

// decodeUTF16 decodes a raw UTF-16 byte buffer into code units, honoring a
// leading BOM (0xFEFF big-endian, 0xFFFE little-endian) and defaulting to
// little-endian when none is present.
func decodeUTF16(content []byte) []uint16 {
	bigEndian := false
	if len(content) >= 2 && content[0] == 0xFE && content[1] == 0xFF {
		bigEndian = true
		content = content[2:]
	} else if len(content) >= 2 && content[0] == 0xFF && content[1] == 0xFE {
		content = content[2:]
	}

	units := make([]uint16, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		if bigEndian {
			units = append(units, uint16(content[i])<<8|uint16(content[i+1]))
		} else {
			units = append(units, uint16(content[i+1])<<8|uint16(content[i]))
		}
	}
	return units
}

// compileError tags err with a random correlation ID, the way a longer-
// running compiler front end would so a single report can be traced
// back through logs from a user's bug report.
func compileError(err error) error {
	return fmt.Errorf("[compile %s] %w", uuid.NewString(), err)
}

func readInput(args []string) ([]byte, error) {
	var reader io.Reader

	if len(args) == 0 || args[0] == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot open file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}

	return content, nil
}

func writeOutput(data []byte) error {
	var writer io.Writer

	if outputFile == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	_, err := writer.Write(data)
	if err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}

	if outputFile == "" {
		fmt.Println()
	}

	return nil
}
