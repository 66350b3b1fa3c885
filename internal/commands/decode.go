package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/danmuck/callsdk/internal/catalog"
	"github.com/danmuck/callsdk/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDecodeCmd() *cobra.Command {
	var (
		collect    bool
		unknown    bool
		permissive []string
		extract    string
	)

	cmd := &cobra.Command{
		Use:   "decode NAME FILE",
		Short: "Decode a JSON or YAML payload into a record and print its encoding",
		Long: `Decode a payload file against a catalog record. Field violations are
printed one per line and the command fails. On success the normalized
encoding is printed: known fields only, in schema order.

FILE may be "-" to read JSON from stdin. Files ending in .yaml or .yml
are parsed as YAML.`,
		Example: `  # Decode a call-control command body
  callsdk decode SendDTMFParams dtmf.json

  # Report every violation, keep unknown keys, print one value
  callsdk decode DialParams dial.yaml --collect --unknown --extract '$.to'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupEntry(args[0])
			if err != nil {
				return err
			}
			payload, err := readPayload(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			var opts []model.Option
			if collect {
				opts = append(opts, model.CollectAll())
			}
			if unknown {
				opts = append(opts, model.RetainUnknown())
			}
			for _, field := range permissive {
				opts = append(opts, model.WithEnumPolicy(field, model.EnumPermissive))
			}
			codec := model.NewCodec(opts...)

			rec, err := codec.Decode(entry.Schema, payload)
			if err != nil {
				for _, fe := range model.FieldErrors(err) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\t%s\n", fe.Kind(), fe.Error())
				}
				return fmt.Errorf("decode %s: %d violation(s)", entry.Schema.Name(), max(1, len(model.FieldErrors(err))))
			}
			out, err := codec.Encode(rec)
			if err != nil {
				return err
			}

			var result any = out
			if extract != "" {
				result, err = jsonpath.Get(extract, plain(out))
				if err != nil {
					return fmt.Errorf("extract %q: %w", extract, err)
				}
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&collect, "collect", false, "Report every field violation instead of the first")
	cmd.Flags().BoolVar(&unknown, "unknown", false, "Keep payload keys the record does not declare")
	cmd.Flags().StringSliceVar(&permissive, "permissive", nil, "Accept unknown enum values for these fields (Record.wire_name)")
	cmd.Flags().StringVar(&extract, "extract", "", "Print the JSONPath projection of the encoding instead")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var nulls bool

	cmd := &cobra.Command{
		Use:   "example NAME",
		Short: "Print a fully populated sample payload for a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupEntry(args[0])
			if err != nil {
				return err
			}
			out, err := model.Encode(catalog.Example(entry.Schema, nulls))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&nulls, "nulls", false, "Set nullable fields to null")
	return cmd
}

func readPayload(stdin io.Reader, path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var payload map[string]any
		if err := yaml.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if payload == nil {
			return nil, errors.New("parse " + path + ": document is empty")
		}
		return payload, nil
	default:
		payload, err := model.ParsePayload(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return payload, nil
	}
}

// plain round-trips v through JSON so JSONPath sees only generic values.
func plain(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
