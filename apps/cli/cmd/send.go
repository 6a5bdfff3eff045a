package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/multiform/packages/http"
	"github.com/abdul-hamid-achik/multiform/packages/multipart"
)

var sendCmd = &cobra.Command{
	Use:   "send <url>",
	Short: "Send a multipart form to an HTTP endpoint",
	Long: `Send a multipart form to an HTTP endpoint.

Fields come from repeated -F flags or from a YAML field file.

Examples:
  multiform send https://api.example.com/upload -F name=Tina -F avatar=@photo.jpg
  multiform send https://api.example.com/upload --form fields.yaml
  multiform send https://api.example.com/upload -F doc=@big.iso -X PUT --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: sendCommand,
}

var (
	sendFieldsFlag   []string
	sendFormFileFlag string
	sendMethodFlag   string
	sendHeaderFlag   []string
	sendTimeoutFlag  time.Duration
	sendInsecureFlag bool
)

func init() {
	sendCmd.Flags().StringArrayVarP(&sendFieldsFlag, "field", "F", nil, "form field (name=value or name=@file), repeatable")
	sendCmd.Flags().StringVar(&sendFormFileFlag, "form", "", "YAML file describing the form fields")
	sendCmd.Flags().StringVarP(&sendMethodFlag, "method", "X", "POST", "HTTP method")
	sendCmd.Flags().StringArrayVarP(&sendHeaderFlag, "header", "H", nil, "extra request header (key: value), repeatable")
	sendCmd.Flags().DurationVar(&sendTimeoutFlag, "timeout", 0, "request timeout (0 uses the client default)")
	sendCmd.Flags().BoolVarP(&sendInsecureFlag, "insecure", "k", false, "skip TLS certificate verification")
}

// formFile is the YAML shape accepted by --form: an ordered field list
// where entries with a path become file parts and the rest text parts.
type formFile struct {
	Fields []formField `yaml:"fields"`
}

type formField struct {
	Name     string `yaml:"name"`
	Value    string `yaml:"value"`
	Path     string `yaml:"path"`
	Mime     string `yaml:"mime"`
	Filename string `yaml:"filename"`
}

func sendCommand(cmd *cobra.Command, args []string) error {
	parts, err := buildParts(sendFieldsFlag)
	if err != nil {
		return err
	}

	if sendFormFileFlag != "" {
		fileParts, err := loadFormFile(sendFormFileFlag)
		if err != nil {
			return err
		}
		parts = append(parts, fileParts...)
	}

	if len(parts) == 0 {
		return fmt.Errorf("no form fields: pass -F or --form")
	}

	req := http.NewRequest(sendMethodFlag, args[0])
	for _, p := range parts {
		req.AddPart(p)
	}
	if sendTimeoutFlag > 0 {
		req.SetTimeout(sendTimeoutFlag)
	}
	for _, h := range sendHeaderFlag {
		key, value, found := splitHeader(h)
		if !found {
			return fmt.Errorf("invalid header %q: expected 'Key: value'", h)
		}
		req.SetHeader(key, value)
	}

	opts := []http.ClientOption{}
	if sendInsecureFlag {
		opts = append(opts, http.WithValidateSSL(false))
	}
	client := http.NewClient(opts...)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	printResponse(cmd, resp)
	return nil
}

func loadFormFile(path string) ([]multipart.Part, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading form file: %w", err)
	}

	var ff formFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("parsing form file %s: %w", path, err)
	}

	parts := make([]multipart.Part, 0, len(ff.Fields))
	for _, f := range ff.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("form file %s: field without a name", path)
		}
		if f.Path != "" {
			p, err := multipart.File(f.Name, f.Path, f.Mime, f.Filename)
			if err != nil {
				return nil, err
			}
			parts = append(parts, p)
			continue
		}
		parts = append(parts, multipart.Text(f.Name, f.Value))
	}
	return parts, nil
}

func splitHeader(h string) (string, string, bool) {
	key, value, found := strings.Cut(h, ":")
	if !found || key == "" {
		return "", "", false
	}
	return key, strings.TrimLeft(value, " "), true
}

func printResponse(cmd *cobra.Command, resp *http.Response) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	status := green(resp.Status)
	if !resp.IsSuccess() {
		status = red(resp.Status)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%dms)\n", bold("Status:"), status, resp.DurationMs())
	if len(resp.Body) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), resp.BodyString())
	}
}
