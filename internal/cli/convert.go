package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/bjaus/xlgrid"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	To        string
	Output    string
	Sheet     string
	Delimiter string
	Border    string
	MapKeys   bool
	EmptyRows bool
	NFC       bool
}

var borders = map[string]xlgrid.BorderStyle{
	"rounded": xlgrid.BorderRounded,
	"none":    xlgrid.BorderNone,
	"ascii":   xlgrid.BorderASCII,
	"heavy":   xlgrid.BorderHeavy,
	"double":  xlgrid.BorderDouble,
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert YAML or JSON documents to a cell grid",
		Long: `Convert reads YAML or JSON documents from a file (or stdin when the file
is omitted or "-") and writes them as a grid of cells.

Each scalar becomes a cell; each sequence or mapping ends its row. Local YAML
tags become variants: "!Red" writes the tag, "!Circle {r: 1}" writes the tag
followed by the mapping's values. Several documents in one stream are laid
out like a top-level sequence.

Example:
  xlgrid convert people.yaml --to xlsx --out people.xlsx
  cat people.json | xlgrid convert --to table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runConvert(cmd, opts, input)
		},
	}

	cmd.Flags().StringVarP(&opts.To, "to", "t", string(xlgrid.XLSX), "output format (see 'xlgrid formats')")
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", xlgrid.DefaultSheet, "worksheet name for xlsx")
	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", ",", "field delimiter for csv")
	cmd.Flags().StringVar(&opts.Border, "border", "rounded", "table border (rounded|none|ascii|heavy|double)")
	cmd.Flags().BoolVar(&opts.MapKeys, "map-keys", false, "write mapping keys as cells before their values")
	cmd.Flags().BoolVar(&opts.EmptyRows, "empty-rows", false, "advance the row on every composite close")
	cmd.Flags().BoolVar(&opts.NFC, "nfc", false, "normalize text cells to Unicode NFC")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *ConvertOptions, input string) (err error) {
	format, err := xlgrid.ParseFormat(opts.To)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --to", err)
	}
	sinkOpts, err := opts.sinkOptions()
	if err != nil {
		return err
	}

	docs, err := readDocuments(cmd, input)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	slog.Debug("documents decoded", "input", input, "count", len(docs))

	var dst io.Writer = cmd.OutOrStdout()
	if opts.Output != "" {
		f, cerr := os.Create(opts.Output)
		if cerr != nil {
			return WrapExitError(ExitCommandError, "failed to create output", cerr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = WrapExitError(ExitFailure, "failed to close output", cerr)
			}
			if err != nil {
				_ = os.Remove(opts.Output)
			}
		}()
		dst = f
	}

	sink, err := xlgrid.NewSink(format, sinkOpts...)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create sink", err)
	}

	encOpts := []xlgrid.Option{xlgrid.WithLogger(slog.Default())}
	if opts.MapKeys {
		encOpts = append(encOpts, xlgrid.WithMapKeys())
	}
	if opts.EmptyRows {
		encOpts = append(encOpts, xlgrid.WithEmptyRows())
	}
	if opts.NFC {
		encOpts = append(encOpts, xlgrid.WithNFC())
	}

	if len(docs) == 1 {
		err = xlgrid.Write(dst, sink, docs[0], encOpts...)
	} else {
		err = xlgrid.WriteIter(dst, sink, slices.Values(docs), encOpts...)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "conversion failed", err)
	}
	slog.Info("converted", "format", format, "documents", len(docs), "output", opts.Output)
	return nil
}

func (o *ConvertOptions) sinkOptions() ([]xlgrid.SinkOption, error) {
	border, ok := borders[o.Border]
	if !ok {
		return nil, WrapExitError(ExitCommandError, "invalid --border", fmt.Errorf("unknown border %q", o.Border))
	}
	if utf8.RuneCountInString(o.Delimiter) != 1 {
		return nil, WrapExitError(ExitCommandError, "invalid --delimiter", fmt.Errorf("want one character, got %q", o.Delimiter))
	}
	delim, _ := utf8.DecodeRuneInString(o.Delimiter)
	return []xlgrid.SinkOption{
		xlgrid.WithSheet(o.Sheet),
		xlgrid.WithDelimiter(delim),
		xlgrid.WithBorder(border),
	}, nil
}

func readDocuments(cmd *cobra.Command, input string) ([]xlgrid.Value, error) {
	if input == "-" {
		return xlgrid.DecodeYAML(cmd.InOrStdin())
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return xlgrid.DecodeYAML(f)
}
