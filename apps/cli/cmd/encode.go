package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/multiform/packages/multipart"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode form fields into a multipart/form-data body",
	Long: `Encode form fields into a multipart/form-data body.

Fields use curl-style syntax: plain values are text fields, values
prefixed with @ attach a file.

Examples:
  multiform encode -F name=Tina -F avatar=@photo.jpg
  multiform encode -F report=@data.csv -o body.bin
  multiform encode -F note=hello --boundary my-boundary --memory`,
	RunE: encodeCommand,
}

var (
	encodeFieldsFlag   []string
	encodeBoundaryFlag string
	encodeOutputFlag   string
	encodeMemoryFlag   bool
)

func init() {
	encodeCmd.Flags().StringArrayVarP(&encodeFieldsFlag, "field", "F", nil, "form field (name=value or name=@file), repeatable")
	encodeCmd.Flags().StringVar(&encodeBoundaryFlag, "boundary", "", "fixed boundary token (generated when omitted)")
	encodeCmd.Flags().StringVarP(&encodeOutputFlag, "output", "o", "", "write the body to this path (default: temp file)")
	encodeCmd.Flags().BoolVar(&encodeMemoryFlag, "memory", false, "encode in memory instead of streaming to disk")
	_ = encodeCmd.MarkFlagRequired("field")
}

func encodeCommand(cmd *cobra.Command, args []string) error {
	parts, err := buildParts(encodeFieldsFlag)
	if err != nil {
		return err
	}

	enc := multipart.NewEncoder(encodeBoundaryFlag)

	if encodeMemoryFlag {
		body, err := enc.EncodeToMemory(parts)
		if err != nil {
			return err
		}
		out := encodeOutputFlag
		if out == "" || out == "-" {
			if _, err := cmd.OutOrStdout().Write(body.Data); err != nil {
				return err
			}
			return nil
		}
		if err := os.WriteFile(out, body.Data, 0o644); err != nil {
			return err
		}
		printEncoded(cmd, body.ContentType, body.ContentLength, out)
		return nil
	}

	body, err := enc.EncodeToFile(parts)
	if err != nil {
		return err
	}

	path := body.Path
	if encodeOutputFlag != "" {
		if err := os.Rename(body.Path, encodeOutputFlag); err != nil {
			os.Remove(body.Path)
			return fmt.Errorf("moving encoded body to %s: %w", encodeOutputFlag, err)
		}
		path = encodeOutputFlag
	}

	printEncoded(cmd, body.ContentType, body.ContentLength, path)
	return nil
}

func printEncoded(cmd *cobra.Command, contentType string, length int64, path string) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold("Content-Type:"), contentType)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", bold("Content-Length:"), length)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold("Body:"), cyan(path))
}

// buildParts turns curl-style field specs into multipart parts, in input
// order. A value starting with @ attaches the named file; mime type and
// filename come from the file itself.
func buildParts(specs []string) ([]multipart.Part, error) {
	parts := make([]multipart.Part, 0, len(specs))
	for _, spec := range specs {
		name, value, found := strings.Cut(spec, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid field %q: expected name=value or name=@file", spec)
		}

		if strings.HasPrefix(value, "@") {
			p, err := multipart.File(name, value[1:], "", "")
			if err != nil {
				return nil, err
			}
			parts = append(parts, p)
			continue
		}

		parts = append(parts, multipart.Text(name, value))
	}
	return parts, nil
}
