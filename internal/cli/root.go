// Package cli implements the journalprompt command: the preference form on
// the terminal.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"journalguru/internal/domain"
	"journalguru/internal/domain/jsoncfg"
	"journalguru/internal/formstate"
)

// SystemClipboard writes to the platform clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Deps are the collaborators the command needs; tests swap them out.
type Deps struct {
	Clipboard  formstate.Clipboard
	HTTPClient *http.Client
}

type flags struct {
	values  map[domain.Field]*string
	copy    bool
	remote  string
	timeout time.Duration
}

// NewRootCommand builds the journalprompt command.
func NewRootCommand(deps Deps) *cobra.Command {
	f := &flags{values: make(map[domain.Field]*string, len(domain.Fields))}
	cmd := &cobra.Command{
		Use:   "journalprompt",
		Short: "Build a journaling prompt for your favourite LLM, or ask the server to generate prompts",
		Long: "journalprompt renders the same instruction as the web form. Paste it into any chat " +
			"assistant, or pass --remote to have a journalguru server generate the prompts directly.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), deps, f)
		},
	}
	f.values[domain.FieldAge] = cmd.Flags().String("age", "", "age range ("+optionValues(domain.AgeOptions)+")")
	f.values[domain.FieldSituation] = cmd.Flags().String("issue", "", "life situation to explore ("+optionValues(domain.SituationOptions)+")")
	f.values[domain.FieldLens] = cmd.Flags().String("lens", "", "philosophical lens ("+optionValues(domain.LensOptions)+")")
	f.values[domain.FieldStyle] = cmd.Flags().String("style", "", "tone of the prompts ("+optionValues(domain.StyleOptions)+"); required with --remote")
	f.values[domain.FieldCount] = cmd.Flags().String("count", "", "number of prompts ("+optionValues(domain.CountOptions)+")")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "copy the result to the clipboard")
	cmd.Flags().StringVar(&f.remote, "remote", "", "base URL of a journalguru server, e.g. http://localhost:8080")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 90*time.Second, "request timeout for --remote")
	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, deps Deps, f *flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	required := domain.StyleOptional
	if f.remote != "" {
		required = domain.AllFieldsRequired
	}
	form := formstate.New(deps.Clipboard, formstate.Options{Required: required})
	for _, field := range domain.Fields {
		if err := form.SetField(string(field), strings.TrimSpace(*f.values[field])); err != nil {
			return err
		}
	}
	check := form.Submit()
	if !check.OK {
		return fmt.Errorf("%w: %s", domain.ErrMissingFields, strings.Join(check.MissingNames(), ", "))
	}
	if f.remote != "" {
		text, err := generateRemote(ctx, deps.HTTPClient, f.remote, f.timeout, form.Values())
		if err != nil {
			return err
		}
		form.Store(text)
	}
	fmt.Fprintln(stdout, form.Rendered())
	if f.copy {
		if err := form.Copy(); err != nil {
			return err
		}
		fmt.Fprintln(stderr, "Copied!")
	}
	return nil
}

type remoteResponse struct {
	Prompts string `json:"prompts"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

func generateRemote(ctx context.Context, client *http.Client, baseURL string, timeout time.Duration, req domain.PromptRequest) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	body, err := jsoncfg.EncodePromptRequest(req, domain.CanonicalScheme)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	endpoint := strings.TrimRight(baseURL, "/") + "/api/generate-prompts"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = fmt.Sprintf("server returned status %d", resp.StatusCode)
		}
		if out.Details != "" {
			msg += ": " + out.Details
		}
		return "", errors.New(msg)
	}
	return out.Prompts, nil
}

func optionValues(opts []domain.Option) string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return strings.Join(values, "|")
}
