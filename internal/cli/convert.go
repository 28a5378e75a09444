package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rgonek/slack-blocks-converter/internal/logging"
	"github.com/rgonek/slack-blocks-converter/slackconverter"
)

// ErrNoInput is returned when no input file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe markdown on stdin")

const stdinPath = "-"

type convertFlags struct {
	configPath string
	preset     string
	output     string
	expand     bool
	strict     bool
	compact    bool
	payload    bool
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert a Markdown file to Slack blocks JSON",
		Long:  convertLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to YAML config file")
	cmd.Flags().StringVar(&flags.preset, "preset", presetBalanced, "preset: balanced|strict|readable|lossy")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write JSON to file instead of stdout")
	cmd.Flags().BoolVar(&flags.expand, "expand", false, "set the expand flag of every section block")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on markdown nodes without a rendering rule")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "print compact JSON")
	cmd.Flags().BoolVar(&flags.payload, "payload", false, `wrap blocks as {"blocks": [...]}`)

	return cmd
}

const convertLongDescription = `Convert a Markdown document to a JSON array of Slack blocks.

Reads the file given as argument, or stdin when the argument is "-" or
omitted. Conversion warnings, such as truncated text, are logged to stderr.

Examples:
  sbc convert README.md                  # Print blocks as JSON
  sbc convert README.md --payload        # Print {"blocks": [...]}
  cat notes.md | sbc convert --compact   # Read stdin
  sbc convert doc.md --expand=false      # Emit "expand": false on sections
  sbc convert doc.md --config sbc.yaml   # Load settings from file`

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := resolveConvertConfig(cmd, flags)
	if err != nil {
		return err
	}

	input := stdinPath
	if len(args) > 0 {
		input = args[0]
	}

	markdown, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	logger.Debug("converting markdown", logging.FieldInput, input, logging.FieldPreset, flags.preset)

	conv, err := slackconverter.New(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	result, err := conv.Convert(string(markdown))
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", input, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn("conversion warning",
			logging.FieldType, warning.Type,
			logging.FieldNode, warning.NodeType,
			logging.FieldMessage, warning.Message,
		)
	}

	data, err := encodeResult(result, flags.payload, flags.compact)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, flags.output, data); err != nil {
		return err
	}

	logger.Debug("conversion finished",
		logging.FieldBlocks, len(result.Blocks),
		logging.FieldWarnings, len(result.Warnings),
		logging.FieldOutput, flags.output,
	)

	return nil
}

// resolveConvertConfig layers the preset, the config file and explicit flags, in that order.
func resolveConvertConfig(cmd *cobra.Command, flags *convertFlags) (slackconverter.Config, error) {
	preset := flags.preset

	var fromFile fileConfig
	if flags.configPath != "" {
		loaded, err := loadConfigFile(flags.configPath)
		if err != nil {
			return slackconverter.Config{}, err
		}
		fromFile = loaded
		if fromFile.Preset != "" && !cmd.Flags().Changed("preset") {
			preset = fromFile.Preset
		}
		logging.FromContext(cmd.Context()).Debug("loaded configuration", logging.FieldConfig, flags.configPath)
	}

	cfg, err := presetConfig(preset)
	if err != nil {
		return slackconverter.Config{}, err
	}
	cfg = mergeConfig(cfg, fromFile.Config)

	if cmd.Flags().Changed("expand") {
		cfg.Expand = slackconverter.Bool(flags.expand)
	}
	if flags.strict {
		cfg.UnknownNodes = slackconverter.UnknownError
	}

	return cfg, nil
}

func readInput(cmd *cobra.Command, input string) ([]byte, error) {
	if input != stdinPath {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return data, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil, ErrNoInput
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func encodeResult(result slackconverter.Result, payload, compact bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if payload {
		data, err = result.JSON()
	} else {
		data, err = json.Marshal(result.Maps())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode blocks: %w", err)
	}

	if compact {
		return append(data, '\n'), nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format blocks JSON: %w", err)
	}
	pretty.WriteByte('\n')
	return pretty.Bytes(), nil
}

func writeOutput(cmd *cobra.Command, output string, data []byte) error {
	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
