package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/govsa"
	"github.com/vitalvas/govsa/pkg/log"
)

type rootOptions struct {
	dictFiles []string
	dictDir   string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "vsaenc",
		Short:         "Encode RADIUS Vendor-Specific Attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringSliceVarP(&opts.dictFiles, "dictionary", "d", nil, "additional dictionary file (YAML or JSON), repeatable")
	cmd.PersistentFlags().StringVar(&opts.dictDir, "dictionary-dir", "", "directory of dictionary files to load")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newEncodeCmd(opts))
	cmd.AddCommand(newLintCmd(opts))

	return cmd
}

// loadDictionary builds the working dictionary: bundled vendors plus any
// files or directory given on the command line.
func (opts *rootOptions) loadDictionary(logger log.Logger) (*govsa.Dictionary, error) {
	dict, err := govsa.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled vendors: %w", err)
	}

	for _, path := range opts.dictFiles {
		if err := dict.LoadFile(path); err != nil {
			return nil, err
		}
		logger.WithField("file", path).Debug("loaded dictionary file")
	}

	if opts.dictDir != "" {
		if err := dict.LoadDir(opts.dictDir); err != nil {
			return nil, err
		}
		logger.WithField("dir", opts.dictDir).Debug("loaded dictionary directory")
	}

	return dict, nil
}

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode Name=value [Name=value ...]",
		Short: "Encode attribute values into VSA wire bytes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger := log.NewLoggerWithLevel(opts.logLevel)

			dict, err := opts.loadDictionary(logger)
			if err != nil {
				logger.Error(err)
				return err
			}

			for _, arg := range args {
				name, value, err := parsePair(arg)
				if err != nil {
					logger.Error(err)
					return err
				}

				attr, err := dict.EncodeByName(name, value)
				if err != nil {
					logger.WithField("attribute", name).Error(err)
					return err
				}

				fmt.Printf("%s: vendor=%d type=%d wire=%x\n",
					name, attr.VendorID, attr.VendorType, attr.WireFormat())
			}

			return nil
		},
	}

	return cmd
}

func newLintCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint file [file ...]",
		Short: "Validate dictionary files without loading them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger := log.NewLoggerWithLevel(opts.logLevel)

			failed := false

			for _, path := range args {
				vendors, err := govsa.LoadVendorFile(path)
				if err != nil {
					logger.Error(err)
					failed = true
					continue
				}

				for _, vendor := range vendors {
					issues := govsa.ValidateVendor(vendor)
					for _, issue := range issues {
						fmt.Printf("%s: %s\n", path, issue)
					}
					if issues.HasErrors() {
						failed = true
					}
				}
			}

			if failed {
				return fmt.Errorf("lint failed")
			}

			logger.Infof("%d file(s) clean", len(args))
			return nil
		},
	}

	return cmd
}

// parsePair splits "Name=value" and guesses the value's Go type: unsigned
// decimal becomes uint32, everything else stays a string (the dictionary
// codec layer parses IP addresses and symbolic enum names from strings).
func parsePair(arg string) (string, any, error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid attribute format: %q (expected 'Name=value')", arg)
	}

	name := strings.TrimSpace(parts[0])
	valueStr := strings.TrimSpace(parts[1])

	if num, err := strconv.ParseUint(valueStr, 10, 32); err == nil {
		return name, uint32(num), nil
	}

	return name, valueStr, nil
}
